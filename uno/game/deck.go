package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. Cards are drawn from the front.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	fillDeck(deck)
	return deck
}

// NewStackedDeck uses cards in the given order without shuffling them.
func NewStackedDeck(cards []card.Card, rng *rand.Rand) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Draw takes up to amount cards from the front of the deck.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount < 0 {
		amount = 0
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// TakeFirst removes and returns the first card matching the predicate.
func (d *Deck) TakeFirst(match func(card.Card) bool) (card.Card, bool) {
	for i, c := range d.cards {
		if match(c) {
			d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
			return c, true
		}
	}
	return card.Card{}, false
}

// Refill shuffles cards into the deck.
func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	shuffleCards(d.rng, d.cards)
}

// StandardCards returns the unshuffled 108 card deck.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Blue)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createBlackCards()...)

	return cards
}

// IsStandardDeck reports whether cards is a permutation of StandardCards.
func IsStandardDeck(cards []card.Card) bool {
	if len(cards) != consts.DeckSize {
		return false
	}
	counts := make(map[card.Card]int, 54)
	for _, c := range StandardCards() {
		counts[c]++
	}
	for _, c := range cards {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

func fillDeck(deck *Deck) {
	cards := StandardCards()
	shuffleCards(deck.rng, cards)
	deck.cards = append(deck.cards, cards...)
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
