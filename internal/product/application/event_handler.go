package application

import (
	"context"
	"fmt"

	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
)

// Notifier envia uma notificação para fora do sistema (e-mail, chat...).
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// SendEmailWhenProductIsCreatedHandler avisa sobre cada produto cadastrado.
type SendEmailWhenProductIsCreatedHandler struct {
	notifier Notifier
}

func NewSendEmailWhenProductIsCreatedHandler(notifier Notifier) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{notifier: notifier}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, event domain.ProductEvent) error {
	data := event.Payload()
	subject := "Product created: " + data.Name
	body := fmt.Sprintf("%s (%s) is now available for %.2f", data.Name, data.Description, data.Price)
	return h.notifier.Notify(ctx, subject, body)
}
