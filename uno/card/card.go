package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"golang.org/x/exp/slices"
)

type Type int

const (
	Number Type = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var typeNames = map[Type]string{
	Number:       "number",
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "+2",
	Wild:         "wild",
	WildDrawFour: "wild +4",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("invalid_type(%d)", int(t))
}

// Rank orders card types for hand display.
func (t Type) Rank() int {
	if _, ok := typeNames[t]; ok {
		return int(t)
	}
	return 999
}

// Card is an immutable UNO card. Two cards are equal when color, type and
// value match, so Card values can be compared with == and used as map keys.
type Card struct {
	color color.Color
	typ   Type
	value int
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{color: c, typ: Number, value: number}
}

func NewSkipCard(c color.Color) Card {
	return Card{color: c, typ: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{color: c, typ: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{color: c, typ: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, typ: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, typ: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Type() Type {
	return c.typ
}

// Value returns the face value of a number card. ok is false for any other card.
func (c Card) Value() (value int, ok bool) {
	if c.typ != Number {
		return 0, false
	}
	return c.value, true
}

func (c Card) IsWild() bool {
	return c.typ == Wild || c.typ == WildDrawFour
}

func (c Card) IsNumber() bool {
	return c.typ == Number
}

func (c Card) Actions() []action.Action {
	switch c.typ {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(consts.DrawTwoPenalty)}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(consts.WildDrawFourPenalty),
		}
	default:
		return []action.Action{}
	}
}

// Label is the face of the card without its color.
func (c Card) Label() string {
	if c.typ == Number {
		return fmt.Sprintf("%d", c.value)
	}
	return c.typ.String()
}

func (c Card) String() string {
	if c.IsWild() {
		return c.Label()
	}
	return fmt.Sprintf("%s %s", c.color, c.Label())
}

// Paint renders the card with terminal colors.
func (c Card) Paint() string {
	return c.color.Paintf("[%s]", c.Label())
}

// SortKey is (color rank, type rank, value) with 999 standing in for a missing value.
func (c Card) SortKey() [3]int {
	value := 999
	if c.typ == Number {
		value = c.value
	}
	return [3]int{c.color.Rank(), c.typ.Rank(), value}
}

func Less(a, b Card) bool {
	ka, kb := a.SortKey(), b.SortKey()
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

// Sort returns a sorted copy of cards.
func Sort(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, Less)
	return sorted
}
