package domain

import (
	"strings"
	"time"
)

type Task struct {
	ID        string
	Title     string
	Assignee  string
	Priority  TaskPriority
	Status    TaskStatus
	DueDate   *time.Time
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Task) Validate() error {
	var v ValidationError
	if strings.TrimSpace(t.Title) == "" {
		v.Add("title", "is required")
	}
	if !t.Priority.Valid() {
		v.Add("priority", "invalid value %q (High|Medium|Low)", t.Priority)
	}
	if !t.Status.Valid() {
		v.Add("status", "invalid value %q (todo|doing|done)", t.Status)
	}
	if t.Position < 0 {
		v.Add("position", "must be >= 0")
	}
	return v.OrNil()
}
