package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Game is a single round of UNO. It is not safe for concurrent use; callers
// sharing a Game between goroutines must serialise access themselves.
type Game struct {
	players      *PlayerIterator
	deck         *Deck
	pile         *Pile
	bus          *event.Bus
	rng          *rand.Rand
	currentColor color.Color
	forcedDraw   int
	winner       string
}

// New seats the players in the given order, deals seven cards to each and
// flips the first non-wild card of the draw pile to start the discard pile.
func New(playerNames []string, opts ...Option) (*Game, error) {
	if err := validatePlayerNames(playerNames); err != nil {
		return nil, err
	}

	o := newOptions(opts)

	var deck *Deck
	if o.deck != nil {
		if !IsStandardDeck(o.deck) {
			return nil, errors.Wrapf(consts.ErrorsDeckComposition, "deck of %d cards", len(o.deck))
		}
		deck = NewStackedDeck(o.deck, o.rng)
	} else {
		deck = NewDeck(o.rng)
	}

	g := &Game{
		players: newPlayerIterator(playerNames),
		deck:    deck,
		pile:    NewPile(),
		bus:     event.NewBus(),
		rng:     o.rng,
	}
	for _, listener := range o.listeners {
		g.bus.Subscribe(listener)
	}

	g.dealStartingCards()
	if err := g.playFirstCard(); err != nil {
		return nil, err
	}
	return g, nil
}

func validatePlayerNames(names []string) error {
	if len(names) < consts.MinPlayers || len(names) > consts.MaxPlayers {
		return errors.Wrapf(consts.ErrorsPlayerCount, "got %d players", len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return consts.ErrorsPlayerName
		}
		if seen[name] {
			return errors.Wrapf(consts.ErrorsDuplicatePlayer, "player %q", name)
		}
		seen[name] = true
	}
	return nil
}

// Events exposes the game's event bus for late subscribers.
func (g *Game) Events() *event.Bus {
	return g.bus
}

func (g *Game) dealStartingCards() {
	g.players.ForEach(func(player *player) {
		player.hand.AddCards(g.deck.Draw(consts.HandSize))
	})
}

func (g *Game) playFirstCard() error {
	firstCard, ok := g.deck.TakeFirst(func(c card.Card) bool { return !c.IsWild() })
	if !ok {
		return errors.WithStack(consts.ErrorsNoStartCard)
	}
	g.pile.Add(firstCard)
	g.currentColor = firstCard.Color()
	g.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return nil
}

// PlayCard plays a single card from the acting player's hand. chosenColor is
// only read for wild cards.
func (g *Game) PlayCard(playerIndex int, handIndex int, chosenColor color.Color) Result {
	return g.PlayMultiple(playerIndex, []int{handIndex}, chosenColor)
}

// PlayMultiple plays one or more cards at once. Several cards must all be
// number cards of the same color and value.
func (g *Game) PlayMultiple(playerIndex int, handIndices []int, chosenColor color.Color) Result {
	player, err := g.actingPlayer(playerIndex)
	if err != nil {
		return failed(err)
	}
	if !player.hand.ValidIndices(handIndices) {
		return failed(consts.ErrorsInvalidIndex)
	}
	cards := player.hand.Pick(handIndices)

	if g.forcedDraw > 0 {
		return g.stack(player, handIndices, cards)
	}

	if len(cards) > 1 && !sameNumberCards(cards) {
		return failed(consts.ErrorsMixedCards)
	}

	leadCard := cards[0]
	if !Playable(leadCard, g.TopCard(), g.currentColor) {
		return failed(consts.ErrorsNotPlayable)
	}
	if leadCard.IsWild() {
		if chosenColor == color.None {
			return failed(consts.ErrorsMustChooseColor)
		}
		if !chosenColor.Concrete() {
			return failed(consts.ErrorsInvalidColor)
		}
	}

	played := player.hand.RemoveAt(handIndices)
	g.pile.Add(played...)
	if leadCard.IsWild() {
		g.currentColor = chosenColor
	} else {
		g.currentColor = leadCard.Color()
	}
	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.name,
		Cards:      played,
	})

	g.performCardActions(player, leadCard)

	if player.NoCards() {
		return g.declareWinner(player)
	}
	g.players.Next()
	return succeeded()
}

// stack passes a pending forced draw on with a single +2 card.
func (g *Game) stack(player *player, handIndices []int, cards []card.Card) Result {
	if len(cards) != 1 || cards[0].Type() != card.DrawTwo {
		return failed(consts.ErrorsMustDrawOrStack)
	}

	played := player.hand.RemoveAt(handIndices)
	g.pile.Add(played...)
	g.currentColor = played[0].Color()
	g.forcedDraw += consts.DrawTwoPenalty
	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.name,
		Cards:      played,
	})

	if player.NoCards() {
		return g.declareWinner(player)
	}
	g.players.Next()
	return succeeded()
}

func sameNumberCards(cards []card.Card) bool {
	first := cards[0]
	if !first.IsNumber() {
		return false
	}
	for _, c := range cards[1:] {
		if c != first {
			return false
		}
	}
	return true
}

func (g *Game) performCardActions(player *player, playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.forcedDraw = cardAction.Amount()
		case action.ReverseTurnsAction:
			g.players.Reverse()
			g.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Direction: g.players.Direction(),
			})
			if g.players.Size() == 2 {
				g.skip()
			}
		case action.SkipTurnAction:
			g.skip()
		case action.PickColorAction:
			g.bus.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.name,
				Color:      g.currentColor,
			})
		}
	}
}

func (g *Game) skip() {
	skippedPlayer := g.players.Next()
	g.bus.TurnSkipped.Emit(event.TurnSkippedPayload{
		PlayerName: skippedPlayer.name,
	})
}

func (g *Game) declareWinner(player *player) Result {
	g.winner = player.name
	g.bus.WinnerFound.Emit(event.WinnerFoundPayload{
		PlayerName: player.name,
	})
	return won(player.name)
}

// Draw gives count cards to the player, reshuffling the discard pile into
// the draw pile when it runs out. Fewer cards are returned when no more
// cards are available.
func (g *Game) Draw(playerIndex int, count int) ([]card.Card, error) {
	if g.IsGameOver() {
		return nil, consts.ErrorsGameOver
	}
	player := g.players.At(playerIndex)
	if player == nil {
		return nil, consts.ErrorsUnknownPlayer
	}
	if count < 0 {
		return nil, consts.ErrorsInvalidCount
	}
	return g.drawCards(player, count), nil
}

// ResolveForcedDraw makes the current player draw the pending penalty and
// clears it. The player may play normally afterwards.
func (g *Game) ResolveForcedDraw(playerIndex int) ([]card.Card, error) {
	player, err := g.actingPlayer(playerIndex)
	if err != nil {
		return nil, err
	}
	if g.forcedDraw == 0 {
		return []card.Card{}, nil
	}
	drawn := g.drawCards(player, g.forcedDraw)
	g.forcedDraw = 0
	return drawn, nil
}

// Pass ends the current player's turn without a play.
func (g *Game) Pass(playerIndex int) Result {
	player, err := g.actingPlayer(playerIndex)
	if err != nil {
		return failed(err)
	}
	if g.forcedDraw > 0 {
		return failed(consts.ErrorsMustDrawOrStack)
	}
	g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.name,
	})
	g.players.Next()
	return succeeded()
}

// DrawTurn resolves a pending forced draw, or draws a single card when there
// is none, and ends the turn.
func (g *Game) DrawTurn(playerIndex int) ([]card.Card, error) {
	player, err := g.actingPlayer(playerIndex)
	if err != nil {
		return nil, err
	}
	var drawn []card.Card
	if g.forcedDraw > 0 {
		drawn = g.drawCards(player, g.forcedDraw)
		g.forcedDraw = 0
	} else {
		drawn = g.drawCards(player, 1)
	}
	g.players.Next()
	return drawn, nil
}

func (g *Game) actingPlayer(playerIndex int) (*player, error) {
	if g.IsGameOver() {
		return nil, consts.ErrorsGameOver
	}
	player := g.players.At(playerIndex)
	if player == nil {
		return nil, consts.ErrorsUnknownPlayer
	}
	if playerIndex != g.players.CurrentIndex() {
		return nil, consts.ErrorsNotYourTurn
	}
	return player, nil
}

func (g *Game) drawCards(player *player, count int) []card.Card {
	drawn := make([]card.Card, 0, count)
	for len(drawn) < count {
		if g.deck.Size() == 0 && !g.reshuffle() {
			break
		}
		c, _ := g.deck.DrawOne()
		drawn = append(drawn, c)
	}
	player.hand.AddCards(drawn)
	g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.name,
		Cards:      drawn,
		Requested:  count,
	})
	return drawn
}

// reshuffle moves every discard except the top card back into the draw pile.
func (g *Game) reshuffle() bool {
	if g.pile.Size() < 2 {
		return false
	}
	cards := g.pile.TakeAllButTop()
	g.deck.Refill(cards)
	g.bus.DeckReshuffled.Emit(event.DeckReshuffledPayload{
		Count: len(cards),
	})
	return true
}
