package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/pokebox/internal/events"
)

// AuditService logs box mutations for traceability. Purely observational.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEntryCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventEntryUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventEntryDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventBoxCleared, a.handleEvent)
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("user", event.User),
		zap.String("entry_id", event.EntryID),
	)
	return nil
}
