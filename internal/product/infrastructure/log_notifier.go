package infrastructure

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

// LogNotifier registra as notificações no log em vez de enviá-las.
type LogNotifier struct {
	logger application.AppLogger
}

func NewLogNotifier(logger application.AppLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, subject, body string) error {
	application.LogInfo(ctx, n.logger, "Sending email", map[string]interface{}{
		"subject": subject,
		"body":    body,
	})
	return nil
}
