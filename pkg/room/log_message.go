package room

import (
	"liarsdice-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages buffers the most recent game log messages so they can be
// replayed to late joiners
// Note: this must only be called from within the run loop
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
