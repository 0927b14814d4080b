package domain

import (
	"strings"
	"time"
)

// SupportTicket is a request for help submitted from the support form.
// Tickets are immutable once submitted.
type SupportTicket struct {
	ID        string
	Title     string
	Type      TicketType
	Priority  TicketPriority
	Content   string
	CreatedAt time.Time
}

func (t *SupportTicket) Validate() error {
	var v ValidationError
	if strings.TrimSpace(t.Title) == "" {
		v.Add("title", "is required")
	}
	if strings.TrimSpace(t.Content) == "" {
		v.Add("content", "is required")
	}
	if !t.Type.Valid() {
		v.Add("type", "invalid value %q", t.Type)
	}
	if !t.Priority.Valid() {
		v.Add("priority", "invalid value %q", t.Priority)
	}
	return v.OrNil()
}
