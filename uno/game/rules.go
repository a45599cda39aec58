package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may go on lastPlayedCard while
// currentColor is in effect. A wild card may not follow another wild card
// directly; the check uses the literal top card, not the chosen color.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, currentColor color.Color) bool {
	if candidateCard.IsWild() {
		return !lastPlayedCard.IsWild()
	}

	if candidateCard.Color() == currentColor {
		return true
	}

	switch candidateCard.Type() {
	case card.Number:
		candidateNumber, _ := candidateCard.Value()
		lastNumber, isNumberCard := lastPlayedCard.Value()
		return isNumberCard && lastNumber == candidateNumber
	default:
		return candidateCard.Type() == lastPlayedCard.Type()
	}
}
