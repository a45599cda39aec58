package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// State is a read-only snapshot of a game as seen by one player.
type State struct {
	LastPlayedCard    card.Card
	CurrentColor      color.Color
	ForcedDraw        int
	Direction         int
	CurrentPlayer     string
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DrawPileSize      int
	Winner            string
}

// ExtractState snapshots the game for the named player, whose hand is
// included in display order.
func (g *Game) ExtractState(name string) (State, error) {
	hand, err := g.SortedHand(name)
	if err != nil {
		return State{}, err
	}
	return State{
		LastPlayedCard:    g.TopCard(),
		CurrentColor:      g.currentColor,
		ForcedDraw:        g.forcedDraw,
		Direction:         g.players.Direction(),
		CurrentPlayer:     g.CurrentPlayer(),
		CurrentPlayerHand: hand,
		PlayerSequence:    g.players.Names(),
		PlayerHandCounts:  g.PlayerCounts(),
		DrawPileSize:      g.deck.Size(),
		Winner:            g.winner,
	}, nil
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s (%s)", s.LastPlayedCard, s.CurrentColor))
	if s.ForcedDraw > 0 {
		lines = append(lines, fmt.Sprintf("Forced draw: %d", s.ForcedDraw))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Current player: %s", s.CurrentPlayer))

	if s.Winner != "" {
		lines = append(lines, fmt.Sprintf("Winner: %s", s.Winner))
	}

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
