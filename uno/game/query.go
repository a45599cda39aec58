package game

import (
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

func (g *Game) Players() []string {
	return g.players.Names()
}

func (g *Game) CurrentPlayer() string {
	return g.players.Current().name
}

func (g *Game) CurrentPlayerIndex() int {
	return g.players.CurrentIndex()
}

// Direction is 1 for seating order and -1 for reversed order.
func (g *Game) Direction() int {
	return g.players.Direction()
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

// ForcedDraw is the number of cards the current player owes.
func (g *Game) ForcedDraw() int {
	return g.forcedDraw
}

// TopCard returns the top of the discard pile. It panics if the pile is
// empty, which can only happen if the engine is broken.
func (g *Game) TopCard() card.Card {
	top, ok := g.pile.Top()
	if !ok {
		panic(consts.ErrorsEmptyDiscardPile)
	}
	return top
}

func (g *Game) PlayerHand(name string) ([]card.Card, error) {
	player := g.players.ByName(name)
	if player == nil {
		return nil, errors.Wrapf(consts.ErrorsUnknownPlayer, "player %q", name)
	}
	return player.hand.Cards(), nil
}

// SortedHand returns the player's hand in display order.
func (g *Game) SortedHand(name string) ([]card.Card, error) {
	cards, err := g.PlayerHand(name)
	if err != nil {
		return nil, err
	}
	return card.Sort(cards), nil
}

func (g *Game) PlayerCounts() map[string]int {
	counts := make(map[string]int, g.players.Size())
	g.players.ForEach(func(player *player) {
		counts[player.name] = player.hand.Size()
	})
	return counts
}

// PlayableIndices lists the hand indices the player could legally lead with.
// While a forced draw is pending only +2 cards qualify.
func (g *Game) PlayableIndices(playerIndex int) ([]int, error) {
	player := g.players.At(playerIndex)
	if player == nil {
		return nil, consts.ErrorsUnknownPlayer
	}
	if g.forcedDraw == 0 {
		return player.hand.PlayableIndices(g.TopCard(), g.currentColor), nil
	}
	var stackable []int
	for index, c := range player.hand.cards {
		if c.Type() == card.DrawTwo {
			stackable = append(stackable, index)
		}
	}
	return stackable, nil
}

func (g *Game) IsGameOver() bool {
	return g.winner != ""
}

func (g *Game) Winner() (string, bool) {
	return g.winner, g.winner != ""
}

func (g *Game) DrawPileSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardPileSize() int {
	return g.pile.Size()
}

// CheckInvariants verifies card conservation, a non-empty discard pile and
// a concrete current color.
func (g *Game) CheckInvariants() error {
	total := g.deck.Size() + g.pile.Size()
	g.players.ForEach(func(player *player) {
		total += player.hand.Size()
	})
	if total != consts.DeckSize {
		return errors.Wrapf(consts.ErrorsCardConservation, "counted %d cards", total)
	}
	if g.pile.Size() == 0 {
		return errors.WithStack(consts.ErrorsEmptyDiscardPile)
	}
	if !g.currentColor.Concrete() {
		return errors.Wrapf(consts.ErrorsWildCurrentColor, "current color %s", g.currentColor)
	}
	return nil
}
