package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
)

type Option func(*options)

type options struct {
	rng       *rand.Rand
	deck      []card.Card
	listeners []interface{}
}

// WithRand sets the source used for the initial shuffle and every reshuffle.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDeck deals from cards in the given order instead of a shuffled deck.
// The cards must be a permutation of the standard deck.
func WithDeck(cards []card.Card) Option {
	return func(o *options) {
		o.deck = make([]card.Card, len(cards))
		copy(o.deck, cards)
	}
}

// WithListener subscribes listener to the game's events before the first
// card is flipped. See event.Bus.Subscribe.
func WithListener(listener interface{}) Option {
	return func(o *options) {
		o.listeners = append(o.listeners, listener)
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
