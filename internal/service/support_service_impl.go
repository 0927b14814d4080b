package service

import (
	"context"
	"time"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/google/uuid"
)

type supportService struct {
	tickets  repository.TicketRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSupportService(tickets repository.TicketRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SupportService {
	return &supportService{tickets: tickets, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Submit stores a support request. Type defaults to "etc" and priority to
// "normal", the support form's initial selections.
func (s *supportService) Submit(ctx context.Context, t *domain.SupportTicket) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"type": string(t.Type), "priority": string(t.Priority)}
	defer func() { observe(ctx, s.observer, "submit-ticket", startedAt, fields, &err) }()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Type == "" {
		t.Type = domain.TicketOther
	}
	if t.Priority == "" {
		t.Priority = domain.TicketNormal
	}
	t.CreatedAt = time.Now().UTC()
	fields["ticket_id"] = t.ID

	if err = t.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTicketRepo(tx).Create(ctx, t); err != nil {
			return err
		}
		return recordActivity(ctx, tx, "requested support", t.Title)
	})
}

func (s *supportService) List(ctx context.Context) ([]*domain.SupportTicket, error) {
	return s.tickets.List(ctx)
}
