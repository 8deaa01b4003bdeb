package session

import (
	"doublelife-server/pkg/playable"
)

const logMessageLimit = 100

// addLogMessages keeps the most recent narrative log for late joiners
// Note: this must only be called from within the run loop
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
