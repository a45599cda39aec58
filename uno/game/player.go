package game

type player struct {
	name string
	hand *Hand
}

func newPlayer(name string) *player {
	return &player{
		name: name,
		hand: NewHand(),
	}
}

func (p *player) NoCards() bool {
	return p.hand.Empty()
}
