package service

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// logListener writes a table's events to the server log.
type logListener struct {
	tableID string
}

func newLogListener(tableID string) *logListener {
	return &logListener{tableID: tableID}
}

func (l *logListener) log(message string) {
	log.Infof("[%s] %s\n", l.tableID, strings.TrimRight(message, "\n"))
}

func (l *logListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.log(msg.Message.FirstCardPlayed(payload.Card))
}

func (l *logListener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.log(msg.Message.PlayerPlayedCards(payload.PlayerName, payload.Cards))
}

func (l *logListener) OnColorPicked(payload event.ColorPickedPayload) {
	l.log(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (l *logListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	message := msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards)
	if len(payload.Cards) > 0 {
		message = strings.TrimRight(message, "\n") + " " + msg.Message.Hand(payload.Cards)
	}
	l.log(message)
}

func (l *logListener) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	l.log(msg.Message.DeckReshuffled(payload.Count))
}

func (l *logListener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.log(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (l *logListener) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	l.log(msg.Message.TurnOrderReversed())
}

func (l *logListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.log(msg.Message.PlayerPassed(payload.PlayerName))
}

func (l *logListener) OnWinnerFound(payload event.WinnerFoundPayload) {
	l.log(msg.Message.WinnerFound(payload.PlayerName))
}
