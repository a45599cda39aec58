package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestStandardCards(t *testing.T) {
	cards := game.StandardCards()
	require.Len(t, cards, 108)
	require.ElementsMatch(t, standardDeckCards, cards)

	counts := make(map[card.Type]int)
	perColorActions := make(map[color.Color]int)
	for _, c := range cards {
		counts[c.Type()]++
		switch c.Type() {
		case card.Skip, card.Reverse, card.DrawTwo:
			perColorActions[c.Color()]++
		}
	}
	require.Equal(t, 76, counts[card.Number])
	require.Equal(t, 24, counts[card.Skip]+counts[card.Reverse]+counts[card.DrawTwo])
	require.Equal(t, 4, counts[card.Wild])
	require.Equal(t, 4, counts[card.WildDrawFour])
	for _, c := range color.Playable {
		require.Equal(t, 6, perColorActions[c])
	}
}

func TestNewDeck(t *testing.T) {
	t.Run("holds_all_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(1)))
		require.Equal(t, 108, deck.Size())
		require.ElementsMatch(t, standardDeckCards, deck.Cards())
	})

	t.Run("shuffles_deterministically_for_a_seed", func(t *testing.T) {
		one := game.NewDeck(rand.New(rand.NewSource(42)))
		two := game.NewDeck(rand.New(rand.NewSource(42)))
		require.Equal(t, one.Cards(), two.Cards())
		require.NotEqual(t, game.StandardCards(), one.Cards())
	})
}

func TestDeckDraw(t *testing.T) {
	t.Run("draws_from_the_front", func(t *testing.T) {
		deck := game.NewStackedDeck([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewNumberCard(color.Red, 3),
		}, rand.New(rand.NewSource(1)))
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
		}, deck.Draw(2))
		require.Equal(t, 1, deck.Size())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(1)))
		require.Empty(t, deck.Draw(0))
		require.Equal(t, 108, deck.Size())
	})

	t.Run("returns_fewer_cards_when_exhausted", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(1)))
		require.Len(t, deck.Draw(100), 100)
		require.Len(t, deck.Draw(50), 8)
		_, ok := deck.DrawOne()
		require.False(t, ok)
	})
}

func TestTakeFirst(t *testing.T) {
	deck := game.NewStackedDeck([]card.Card{
		card.NewWildCard(),
		card.NewWildDrawFourCard(),
		card.NewSkipCard(color.Green),
		card.NewNumberCard(color.Blue, 4),
	}, rand.New(rand.NewSource(1)))

	taken, ok := deck.TakeFirst(func(c card.Card) bool { return !c.IsWild() })
	require.True(t, ok)
	require.Equal(t, card.NewSkipCard(color.Green), taken)
	require.Equal(t, []card.Card{
		card.NewWildCard(),
		card.NewWildDrawFourCard(),
		card.NewNumberCard(color.Blue, 4),
	}, deck.Cards())

	_, ok = deck.TakeFirst(func(c card.Card) bool { return c.Type() == card.Reverse })
	require.False(t, ok)
}

func TestRefill(t *testing.T) {
	deck := game.NewStackedDeck(nil, rand.New(rand.NewSource(7)))
	refill := []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 3),
		card.NewWildCard(),
	}
	deck.Refill(refill)
	require.ElementsMatch(t, refill, deck.Cards())
}

func TestIsStandardDeck(t *testing.T) {
	require.True(t, game.IsStandardDeck(game.StandardCards()))
	require.True(t, game.IsStandardDeck(game.NewDeck(rand.New(rand.NewSource(3))).Cards()))

	tooShort := game.StandardCards()[1:]
	require.False(t, game.IsStandardDeck(tooShort))

	swapped := game.StandardCards()
	swapped[0] = card.NewWildCard()
	require.False(t, game.IsStandardDeck(swapped))
}

var standardDeckCards = []card.Card{
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewDrawTwoCard(color.Blue),
	card.NewDrawTwoCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewNumberCard(color.Blue, 0),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 9),
	card.NewNumberCard(color.Blue, 9),
	card.NewDrawTwoCard(color.Green),
	card.NewDrawTwoCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewNumberCard(color.Green, 0),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 9),
	card.NewNumberCard(color.Green, 9),
	card.NewDrawTwoCard(color.Red),
	card.NewDrawTwoCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewNumberCard(color.Red, 0),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 9),
	card.NewNumberCard(color.Red, 9),
	card.NewDrawTwoCard(color.Yellow),
	card.NewDrawTwoCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewNumberCard(color.Yellow, 0),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 9),
	card.NewNumberCard(color.Yellow, 9),
}
