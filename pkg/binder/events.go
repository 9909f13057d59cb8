package binder

import (
	"sync"
	"time"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
)

// TransitionEvent records one claim state transition
type TransitionEvent struct {
	Time   time.Time          `json:"time"`
	Claim  string             `json:"claim"`
	Volume string             `json:"volume,omitempty"`
	From   apisv1alpha1.State `json:"from"`
	To     apisv1alpha1.State `json:"to"`
	Note   string             `json:"note,omitempty"`
}

// EventHistory is a bounded in-memory record of recent transitions, kept
// for the status endpoints. Oldest entries are dropped beyond the limit
type EventHistory struct {
	limit  int
	events []TransitionEvent

	lock sync.Mutex
}

// NewEventHistory creates a history bounded to limit entries
func NewEventHistory(limit int) *EventHistory {
	if limit <= 0 {
		limit = apisv1alpha1.DefaultEventHistoryLimit
	}
	return &EventHistory{
		limit:  limit,
		events: make([]TransitionEvent, 0, limit),
	}
}

// Record appends an event, evicting the oldest when full
func (h *EventHistory) Record(event TransitionEvent) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if len(h.events) >= h.limit {
		h.events = h.events[1:]
	}
	h.events = append(h.events, event)
}

// List returns a copy of the history, oldest first
func (h *EventHistory) List() []TransitionEvent {
	h.lock.Lock()
	defer h.lock.Unlock()

	events := make([]TransitionEvent, len(h.events))
	copy(events, h.events)
	return events
}
