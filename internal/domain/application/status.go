package application

import (
	"errors"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown application status")

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusRejected},
	StatusProcessing: {StatusCompleted, StatusRejected},
}

func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses {
		if strings.EqualFold(string(s), strings.TrimSpace(raw)) {
			return s, nil
		}
	}
	return "", ErrUnknownStatus
}

// CanTransition reports whether moving from one status to another is allowed.
// Completed and Rejected are terminal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
