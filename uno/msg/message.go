package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerPlayedCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s played %s!", playerName, cards[0])
	}
	return Sprintfln("%s played %d x %s!", playerName, len(cards), cards[0])
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	switch len(cards) {
	case 0:
		return Sprintfln("%s could not draw, no cards left!", playerName)
	case 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) DeckReshuffled(count int) string {
	return Sprintfln("Discard pile reshuffled, %d card(s) back in the deck!", count)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

// Hand renders cards with terminal colors, separated by spaces.
func (m MessageWriter) Hand(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.Paint())
	}
	return strings.Join(painted, " ")
}

// Welcome greets a new table and lists its seating order.
func (m MessageWriter) Welcome(playerNames []string) string {
	return Sprintlns([]string{
		fmt.Sprintf(
			"WELCOME TO %s%s%s",
			color.Red.Paint("U"),
			color.Yellow.Paint("N"),
			color.Blue.Paint("O"),
		),
		fmt.Sprintf("Players: %s", strings.Join(playerNames, ", ")),
	})
}
