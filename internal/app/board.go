package app

import "github.com/alexanderramin/shopfloor/internal/domain"

type BoardColumn struct {
	Status domain.TaskStatus
	Tasks  []*domain.Task
}

// Board holds the three kanban columns in todo, doing, done order.
type Board struct {
	Columns []BoardColumn
}

// Column returns the column for status, or nil.
func (b *Board) Column(status domain.TaskStatus) *BoardColumn {
	for i := range b.Columns {
		if b.Columns[i].Status == status {
			return &b.Columns[i]
		}
	}
	return nil
}

// MoveRequest drops a task into a column at a position. A nil Position
// appends to the bottom of the target column.
type MoveRequest struct {
	TaskID   string
	Status   domain.TaskStatus
	Position *int
}

type MoveResult struct {
	Task *domain.Task
	// Changed is false when the drop landed where the task already was.
	Changed bool
}
