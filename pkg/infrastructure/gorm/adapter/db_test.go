package adapter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/gorm/adapter"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func TestOpen_SQLite(t *testing.T) {
	db, err := adapter.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", zapAdapter.NewZapAppLoggerFrom(zap.NewNop()))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := adapter.Open("mysql", "dsn", zapAdapter.NewZapAppLoggerFrom(zap.NewNop()))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestGormLoggerAdapter_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := adapter.NewGormLoggerAdapter(zapAdapter.NewZapAppLoggerFrom(zap.New(core)))
	query := func() (string, int64) { return "SELECT * FROM customers", 0 }
	ctx := context.Background()

	logger.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len(), "record not found is not an error worth logging")

	logger.Trace(ctx, time.Now(), query, errors.New("syntax error"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sql error", logs.All()[0].Message)

	logger.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "slow sql", logs.All()[1].Message)

	logger.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), query, errors.New("ignored"))
	assert.Equal(t, 2, logs.Len())

	logger.LogMode(gormlogger.Info).Trace(ctx, time.Now(), query, nil)
	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "sql", logs.All()[2].Message)
}
