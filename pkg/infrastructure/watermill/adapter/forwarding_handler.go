package adapter

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const (
	EventNameMetadataKey  = "event_name"
	OccurredAtMetadataKey = "occurred_at"
)

// ForwardingEventHandler republica o payload de um evento de domínio como
// mensagem JSON no tópico de mesmo nome do evento.
type ForwardingEventHandler[E domain.Event[T], T any] struct {
	publisher message.Publisher
	logger    application.AppLogger
}

func NewForwardingEventHandler[E domain.Event[T], T any](publisher message.Publisher, logger application.AppLogger) *ForwardingEventHandler[E, T] {
	return &ForwardingEventHandler[E, T]{
		publisher: publisher,
		logger:    logger,
	}
}

func (h *ForwardingEventHandler[E, T]) Handle(ctx context.Context, event E) error {
	eventName := event.EventName()

	payload, err := application.MarshalPayload(event.Payload())
	if err != nil {
		application.LogError(ctx, h.logger, "error marshalling event payload", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(EventNameMetadataKey, eventName)
	msg.Metadata.Set(OccurredAtMetadataKey, event.OccurredAt().Format(time.RFC3339Nano))
	msg.SetContext(ctx)

	if err := h.publisher.Publish(eventName, msg); err != nil {
		application.LogError(ctx, h.logger, "error forwarding event", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	application.LogDebug(ctx, h.logger, "event forwarded", map[string]interface{}{
		"event_name": eventName,
		"message_id": msg.UUID,
	})
	return nil
}
