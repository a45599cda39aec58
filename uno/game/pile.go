package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. The top card is the last element.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeAllButTop removes and returns every card under the top card.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	rest := make([]card.Card, len(p.cards)-1)
	copy(rest, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return rest
}
