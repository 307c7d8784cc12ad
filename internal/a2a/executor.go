// Package a2a exposes the health check as an A2A agent skill.
package a2a

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/a2aproject/a2a-go/a2asrv"
	"github.com/a2aproject/a2a-go/a2asrv/eventqueue"

	"github.com/metalops/ironic-aio/internal/health"
)

// Executor implements a2asrv.AgentExecutor. Every incoming message
// runs the health check; this agent has exactly one skill.
type Executor struct {
	svc *health.Service
}

var _ a2asrv.AgentExecutor = (*Executor)(nil)

// NewExecutor creates an executor backed by the health service.
func NewExecutor(svc *health.Service) *Executor {
	return &Executor{svc: svc}
}

// Execute runs the health check and replies with the serialized record.
func (e *Executor) Execute(ctx context.Context, reqCtx *a2asrv.RequestContext, queue eventqueue.Queue) error {
	workingEvent := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateWorking, nil)
	if err := queue.Write(ctx, workingEvent); err != nil {
		return fmt.Errorf("write working status: %w", err)
	}

	record := e.svc.Check(ctx)
	payload, err := json.Marshal(record)
	if err != nil {
		failEvent := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateFailed,
			a2a.NewMessageForTask(a2a.MessageRoleAgent, reqCtx, a2a.TextPart{Text: err.Error()}))
		failEvent.Final = true
		return queue.Write(ctx, failEvent)
	}

	completedEvent := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateCompleted,
		a2a.NewMessageForTask(a2a.MessageRoleAgent, reqCtx, a2a.TextPart{Text: string(payload)}))
	completedEvent.Final = true
	return queue.Write(ctx, completedEvent)
}

// Cancel writes a canceled status event.
func (e *Executor) Cancel(ctx context.Context, reqCtx *a2asrv.RequestContext, queue eventqueue.Queue) error {
	event := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateCanceled, nil)
	event.Final = true
	return queue.Write(ctx, event)
}
