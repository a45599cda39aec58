package service

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Table is one hosted game. All access to the game goes through Do, which
// serialises callers.
type Table struct {
	sync.Mutex

	id         string
	game       *game.Game
	createdAt  time.Time
	activeTime time.Time
}

func (t *Table) ID() string {
	return t.id
}

// Do runs fn with exclusive access to the game and marks the table active.
// Lock order is table then registry: fn may call Registry methods, the
// registry never waits on a table while holding its own lock.
func (t *Table) Do(fn func(g *game.Game) error) error {
	t.Lock()
	defer t.Unlock()
	t.activeTime = time.Now()
	err := fn(t.game)
	var e consts.Error
	if errors.As(err, &e) && e.Fatal() {
		log.Error(errors.Wrapf(err, "table %s is corrupt", t.id))
	}
	return err
}

// State snapshots the game as seen by the named player.
func (t *Table) State(name string) (game.State, error) {
	t.Lock()
	defer t.Unlock()
	return t.game.ExtractState(name)
}

func (t *Table) idle(now time.Time, timeout time.Duration) bool {
	t.Lock()
	defer t.Unlock()
	return t.game.IsGameOver() || now.Sub(t.activeTime) > timeout
}

// TableModel is the public summary of a table, safe to hand to any player.
type TableModel struct {
	ID            string         `json:"id"`
	Players       []string       `json:"players"`
	HandCounts    map[string]int `json:"handCounts"`
	TopCard       string         `json:"topCard"`
	CurrentColor  string         `json:"currentColor"`
	CurrentPlayer string         `json:"currentPlayer"`
	Direction     int            `json:"direction"`
	ForcedDraw    int            `json:"forcedDraw"`
	DrawPile      int            `json:"drawPile"`
	Winner        string         `json:"winner,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	ActiveTime    time.Time      `json:"activeTime"`
}

func (t *Table) Model() TableModel {
	t.Lock()
	defer t.Unlock()
	winner, _ := t.game.Winner()
	return TableModel{
		ID:            t.id,
		Players:       t.game.Players(),
		HandCounts:    t.game.PlayerCounts(),
		TopCard:       t.game.TopCard().String(),
		CurrentColor:  t.game.CurrentColor().String(),
		CurrentPlayer: t.game.CurrentPlayer(),
		Direction:     t.game.Direction(),
		ForcedDraw:    t.game.ForcedDraw(),
		DrawPile:      t.game.DrawPileSize(),
		Winner:        winner,
		CreatedAt:     t.createdAt,
		ActiveTime:    t.activeTime,
	}
}

// JSON encodes the table summary.
func (t *Table) JSON() []byte {
	return json.Marshal(t.Model())
}
