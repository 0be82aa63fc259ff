package adapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
	"github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func TestZapAppLogger_WritesFieldsAndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := adapter.NewZapAppLoggerFrom(zap.New(core))

	ctx := adapter.WithRequestID(context.Background(), "req-1")
	logger.Info(ctx, "customer created", map[string]interface{}{"id": "1"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "customer created", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "req-1", entry.ContextMap()["requestID"])
	assert.Equal(t, "1", entry.ContextMap()["id"])
}

func TestZapAppLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := adapter.NewZapAppLoggerFrom(zap.New(core))
	ctx := context.Background()

	logger.Debug(ctx, "debug", nil)
	logger.Trace(ctx, "trace", nil)
	application.LogError(ctx, logger, "failed", errors.New("boom"), map[string]interface{}{"event_name": "X"})

	require.Equal(t, 3, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.DebugLevel, logs.All()[1].Level)

	failed := logs.FilterMessage("failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "boom", failed[0].ContextMap()["error"])
	assert.Equal(t, "X", failed[0].ContextMap()["event_name"])
}

func TestNewZapAppLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := adapter.NewZapAppLogger("loud")
	assert.Error(t, err)

	logger, err := adapter.NewZapAppLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
