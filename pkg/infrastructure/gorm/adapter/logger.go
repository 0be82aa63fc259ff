package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

const slowQueryThreshold = 200 * time.Millisecond

type gormLoggerAdapter struct {
	appLogger application.AppLogger
	level     gormlogger.LogLevel
}

// NewGormLoggerAdapter encaminha os logs do gorm para o AppLogger.
func NewGormLoggerAdapter(appLogger application.AppLogger) gormlogger.Interface {
	return &gormLoggerAdapter{
		appLogger: appLogger,
		level:     gormlogger.Warn,
	}
}

func (a *gormLoggerAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLoggerAdapter{
		appLogger: a.appLogger,
		level:     level,
	}
}

func (a *gormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Info {
		a.appLogger.Info(ctx, fmt.Sprintf(msg, args...), nil)
	}
}

func (a *gormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Warn {
		a.appLogger.Info(ctx, fmt.Sprintf(msg, args...), map[string]interface{}{"level": "warn"})
	}
}

func (a *gormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Error {
		a.appLogger.Error(ctx, fmt.Sprintf(msg, args...), nil)
	}
}

func (a *gormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && a.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		application.LogError(ctx, a.appLogger, "sql error", err, map[string]interface{}{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed.String(),
		})
	case elapsed > slowQueryThreshold && a.level >= gormlogger.Warn:
		sql, rows := fc()
		application.LogInfo(ctx, a.appLogger, "slow sql", map[string]interface{}{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed.String(),
		})
	case a.level >= gormlogger.Info:
		sql, rows := fc()
		application.LogTrace(ctx, a.appLogger, "sql", map[string]interface{}{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed.String(),
		})
	}
}
