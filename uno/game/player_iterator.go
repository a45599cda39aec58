package game

// PlayerIterator keeps players in seating order and tracks whose turn it is.
type PlayerIterator struct {
	players []*player
	indices map[string]int
	cycler  *Cycler
}

func newPlayerIterator(names []string) *PlayerIterator {
	players := make([]*player, 0, len(names))
	indices := make(map[string]int, len(names))
	for index, name := range names {
		players = append(players, newPlayer(name))
		indices[name] = index
	}
	return &PlayerIterator{
		players: players,
		indices: indices,
		cycler:  NewCycler(len(players)),
	}
}

func (i *PlayerIterator) At(index int) *player {
	if index < 0 || index >= len(i.players) {
		return nil
	}
	return i.players[index]
}

func (i *PlayerIterator) ByName(name string) *player {
	index, ok := i.indices[name]
	if !ok {
		return nil
	}
	return i.players[index]
}

func (i *PlayerIterator) Current() *player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

func (i *PlayerIterator) ForEach(function func(player *player)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Names() []string {
	names := make([]string, 0, len(i.players))
	for _, player := range i.players {
		names = append(names, player.name)
	}
	return names
}

func (i *PlayerIterator) Next() *player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Size() int {
	return len(i.players)
}
