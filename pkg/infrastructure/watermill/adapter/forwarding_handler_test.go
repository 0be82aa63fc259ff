package adapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

type productCreated struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestForwardingEventHandler_PublishesPayload(t *testing.T) {
	appLogger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, adapter.NewWatermillLoggerAdapter(appLogger))
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "ProductCreatedEvent")
	require.NoError(t, err)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	event := domain.NewEventAt("ProductCreatedEvent", productCreated{Name: "Product 1", Price: 10}, at)

	handler := adapter.NewForwardingEventHandler[domain.Event[productCreated], productCreated](pubSub, appLogger)
	require.NoError(t, handler.Handle(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		var got productCreated
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, productCreated{Name: "Product 1", Price: 10}, got)
		assert.Equal(t, "ProductCreatedEvent", msg.Metadata.Get(adapter.EventNameMetadataKey))
		assert.Equal(t, at.Format(time.RFC3339Nano), msg.Metadata.Get(adapter.OccurredAtMetadataKey))
	case <-ctx.Done():
		t.Fatal("message was not forwarded")
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(string, ...*message.Message) error { return errors.New("closed") }
func (failingPublisher) Close() error                              { return nil }

func TestForwardingEventHandler_ReturnsPublishError(t *testing.T) {
	appLogger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	handler := adapter.NewForwardingEventHandler[domain.Event[string], string](failingPublisher{}, appLogger)

	err := handler.Handle(context.Background(), domain.NewEvent("X", "payload"))

	assert.EqualError(t, err, "closed")
}

func TestWatermillLoggerAdapter_With(t *testing.T) {
	logger := adapter.NewWatermillLoggerAdapter(zapAdapter.NewZapAppLoggerFrom(zap.NewNop()))

	child := logger.With(watermill.LogFields{"topic": "X"})

	assert.NotNil(t, child)
	child.Error("failed", errors.New("boom"), nil)
	child.Info("ok", watermill.LogFields{"n": 1})
}
