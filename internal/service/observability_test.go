package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserve_ReportsOutcome(t *testing.T) {
	rec := &recordingObserver{}
	ctx := context.Background()

	var err error
	observe(ctx, rec, "ok-case", time.Now(), map[string]any{"k": 1}, &err)
	err = errors.New("boom")
	observe(ctx, rec, "bad-case", time.Now(), nil, &err)

	if assert.Len(t, rec.events, 2) {
		assert.True(t, rec.events[0].Success)
		assert.Equal(t, 1, rec.events[0].Fields["k"])
		assert.False(t, rec.events[1].Success)
		assert.EqualError(t, rec.events[1].Err, "boom")
	}
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	ctx := WithActor(context.Background(), "  lee ")

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "create-task", Success: true, Fields: map[string]any{"task_id": "t1"}})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "move-task", Err: errors.New("not found")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=create-task")
	assert.Contains(t, out, "task_id=t1")
	assert.Contains(t, out, "actor=lee")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="not found"`)
}

func TestObserverFallbacks(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.Empty(t, ActorFrom(context.Background()))
}
