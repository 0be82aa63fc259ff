package adapter

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

// LogForwardedEvents consome o tópico informado e registra cada mensagem recebida
// até o contexto ser cancelado ou o subscriber ser fechado.
func LogForwardedEvents(ctx context.Context, subscriber message.Subscriber, topic string, logger application.AppLogger) error {
	messages, err := subscriber.Subscribe(ctx, topic)
	if err != nil {
		application.LogError(ctx, logger, "error subscribing to topic", err, map[string]interface{}{
			"topic": topic,
		})
		return err
	}

	go func() {
		for msg := range messages {
			application.LogInfo(msg.Context(), logger, "forwarded event received", map[string]interface{}{
				"topic":       topic,
				"message_id":  msg.UUID,
				"event_name":  msg.Metadata.Get(EventNameMetadataKey),
				"occurred_at": msg.Metadata.Get(OccurredAtMetadataKey),
				"payload":     string(msg.Payload),
			})
			msg.Ack()
		}
	}()

	return nil
}
