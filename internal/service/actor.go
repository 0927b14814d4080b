package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/google/uuid"
)

type actorKey struct{}

// WithActor tags ctx with the user performing the request; the name shows
// up in the activity feed and in use-case logs.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(actor))
}

// ActorFrom returns the actor stored by WithActor, or "".
func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

const defaultActor = "system"

// recordActivity appends an entry to the recent-updates feed using the
// transaction of the mutation it describes.
func recordActivity(ctx context.Context, tx db.DBTX, action, target string) error {
	return repository.NewSQLiteActivityRepo(tx).Create(ctx, &domain.ActivityEvent{
		ID:        uuid.New().String(),
		Actor:     domain.CoalesceStr(ActorFrom(ctx), defaultActor),
		Action:    action,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	})
}
