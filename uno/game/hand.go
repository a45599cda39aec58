package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"golang.org/x/exp/slices"
)

// Hand keeps cards in the order they were received. Indices are stable
// within a turn.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// ValidIndices reports whether indices is a non-empty set of distinct
// positions inside the hand.
func (h *Hand) ValidIndices(indices []int) bool {
	if len(indices) == 0 {
		return false
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	if sorted[0] < 0 || sorted[len(sorted)-1] >= len(h.cards) {
		return false
	}
	return len(slices.Compact(sorted)) == len(indices)
}

// Pick returns the cards at indices in ascending index order.
func (h *Hand) Pick(indices []int) []card.Card {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	cards := make([]card.Card, 0, len(sorted))
	for _, index := range sorted {
		cards = append(cards, h.cards[index])
	}
	return cards
}

// RemoveAt removes the cards at indices, highest index first so the
// remaining indices stay valid, and returns them in removal order.
func (h *Hand) RemoveAt(indices []int) []card.Card {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	removed := make([]card.Card, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		index := sorted[i]
		removed = append(removed, h.cards[index])
		h.cards = slices.Delete(h.cards, index, index+1)
	}
	return removed
}

func (h *Hand) PlayableIndices(top card.Card, currentColor color.Color) []int {
	var playable []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, top, currentColor) {
			playable = append(playable, index)
		}
	}
	return playable
}
