package room

import (
	"pokerrooms-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages to the history, keeping only the newest
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// logResponse wraps log messages for the client
func logResponse(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "log",
		Data: messages,
	}
}
