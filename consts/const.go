package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 4

	HandSize = 7
	DeckSize = 108

	DrawTwoPenalty      = 2
	WildDrawFourPenalty = 4

	DefaultMaxTables   = 1024
	DefaultIdleTimeout = 24 * time.Hour
)

// Kind classifies an Error.
type Kind int

const (
	_ Kind = iota
	// InvalidSetup is returned when a game can not be constructed.
	InvalidSetup
	// IllegalMove is a recoverable rejection; the game is left unchanged.
	IllegalMove
	// InvariantViolation means the engine state is corrupt.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InvalidSetup:
		return "InvalidSetup"
	case IllegalMove:
		return "IllegalMove"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Reason is a stable code for programmatic handling of an Error.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonPlayerCount
	ReasonPlayerName
	ReasonDuplicatePlayer
	ReasonDeckComposition
	ReasonNoStartCard
	ReasonCardConservation
	ReasonEmptyDiscardPile
	ReasonWildCurrentColor
	ReasonGameOver
	ReasonUnknownPlayer
	ReasonNotYourTurn
	ReasonInvalidIndex
	ReasonInvalidCount
	ReasonMustDrawOrStack
	ReasonMixedCards
	ReasonNotPlayable
	ReasonMustChooseColor
	ReasonInvalidColor
	ReasonTooManyTables
	ReasonTableNotFound
)

type Error struct {
	Kind Kind
	Code Reason
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

// Fatal reports whether the error indicates a bug rather than bad input.
func (e Error) Fatal() bool {
	return e.Kind == InvariantViolation
}

func NewErr(kind Kind, code Reason, msg string) Error {
	return Error{Kind: kind, Code: code, Msg: msg}
}

var (
	ErrorsPlayerCount     = NewErr(InvalidSetup, ReasonPlayerCount, "A game needs 2 to 4 players. ")
	ErrorsPlayerName      = NewErr(InvalidSetup, ReasonPlayerName, "Player names must not be empty. ")
	ErrorsDuplicatePlayer = NewErr(InvalidSetup, ReasonDuplicatePlayer, "Player names must be unique. ")
	ErrorsDeckComposition = NewErr(InvalidSetup, ReasonDeckComposition, "Deck is not a standard 108 card deck. ")

	ErrorsNoStartCard      = NewErr(InvariantViolation, ReasonNoStartCard, "No non-wild card left to start the discard pile. ")
	ErrorsCardConservation = NewErr(InvariantViolation, ReasonCardConservation, "Card count does not add up to 108. ")
	ErrorsEmptyDiscardPile = NewErr(InvariantViolation, ReasonEmptyDiscardPile, "Discard pile is empty. ")
	ErrorsWildCurrentColor = NewErr(InvariantViolation, ReasonWildCurrentColor, "Current color is wild. ")

	ErrorsGameOver        = NewErr(IllegalMove, ReasonGameOver, "Game is over. ")
	ErrorsUnknownPlayer   = NewErr(IllegalMove, ReasonUnknownPlayer, "Unknown player. ")
	ErrorsNotYourTurn     = NewErr(IllegalMove, ReasonNotYourTurn, "It is not your turn. ")
	ErrorsInvalidIndex    = NewErr(IllegalMove, ReasonInvalidIndex, "Invalid card selection. ")
	ErrorsInvalidCount    = NewErr(IllegalMove, ReasonInvalidCount, "Draw count must not be negative. ")
	ErrorsMustDrawOrStack = NewErr(IllegalMove, ReasonMustDrawOrStack, "You must draw cards first or play a single +2 card to stack! ")
	ErrorsMixedCards      = NewErr(IllegalMove, ReasonMixedCards, "All cards must be the same number and color. ")
	ErrorsNotPlayable     = NewErr(IllegalMove, ReasonNotPlayable, "Card is not playable. ")
	ErrorsMustChooseColor = NewErr(IllegalMove, ReasonMustChooseColor, "Must choose color for wild card. ")
	ErrorsInvalidColor    = NewErr(IllegalMove, ReasonInvalidColor, "Chosen color must be red, blue, green or yellow. ")

	ErrorsTooManyTables = NewErr(InvalidSetup, ReasonTooManyTables, "Too many tables. ")
	ErrorsTableNotFound = NewErr(IllegalMove, ReasonTableNotFound, "Table not found. ")
)
