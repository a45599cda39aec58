package game

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
)

// Result is the outcome of a play. A failed play leaves the game unchanged;
// Code and Message tell the caller why.
type Result struct {
	Success bool
	Kind    consts.Kind
	Code    consts.Reason
	Message string
	Winner  string
}

func (r Result) Won() bool {
	return r.Winner != ""
}

// Err returns the rejection as an error, or nil for a successful play.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return consts.Error{Kind: r.Kind, Code: r.Code, Msg: r.Message}
}

func succeeded() Result {
	return Result{Success: true}
}

func won(name string) Result {
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s wins!", name),
		Winner:  name,
	}
}

func failed(err error) Result {
	var e consts.Error
	if !errors.As(err, &e) {
		e = consts.NewErr(consts.InvariantViolation, consts.ReasonNone, err.Error())
	}
	return Result{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Msg,
	}
}
