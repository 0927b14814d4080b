package domain

import "time"

// ActivityEvent is one entry of the recent-updates feed.
type ActivityEvent struct {
	ID        string
	Actor     string
	Action    string
	Target    string
	CreatedAt time.Time
}
