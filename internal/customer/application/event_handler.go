package application

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
)

type CustomerEventHandler = pkgApp.EventHandler[domain.CustomerEvent, domain.CustomerEventData]

// LogWhenCustomerIsCreatedHandler é a primeira reação ao CustomerCreatedEvent.
type LogWhenCustomerIsCreatedHandler struct {
	logger pkgApp.AppLogger
}

func NewLogWhenCustomerIsCreatedHandler(logger pkgApp.AppLogger) *LogWhenCustomerIsCreatedHandler {
	return &LogWhenCustomerIsCreatedHandler{logger: logger}
}

func (h *LogWhenCustomerIsCreatedHandler) Handle(ctx context.Context, event domain.CustomerEvent) error {
	pkgApp.LogInfo(ctx, h.logger, "Esse é o primeiro log do evento: CustomerCreated", map[string]interface{}{
		"customer_id": event.Payload().ID,
		"occurred_at": event.OccurredAt(),
	})
	return nil
}

// LogWhenCustomerIsCreatedSecondHandler é a segunda reação ao CustomerCreatedEvent.
type LogWhenCustomerIsCreatedSecondHandler struct {
	logger pkgApp.AppLogger
}

func NewLogWhenCustomerIsCreatedSecondHandler(logger pkgApp.AppLogger) *LogWhenCustomerIsCreatedSecondHandler {
	return &LogWhenCustomerIsCreatedSecondHandler{logger: logger}
}

func (h *LogWhenCustomerIsCreatedSecondHandler) Handle(ctx context.Context, event domain.CustomerEvent) error {
	pkgApp.LogInfo(ctx, h.logger, "Esse é o segundo log do evento: CustomerCreated", map[string]interface{}{
		"customer_id": event.Payload().ID,
		"occurred_at": event.OccurredAt(),
	})
	return nil
}

// ChangeAddressHandler registra a troca de endereço de um cliente.
type ChangeAddressHandler struct {
	logger pkgApp.AppLogger
}

func NewChangeAddressHandler(logger pkgApp.AppLogger) *ChangeAddressHandler {
	return &ChangeAddressHandler{logger: logger}
}

func (h *ChangeAddressHandler) Handle(ctx context.Context, event domain.CustomerEvent) error {
	data := event.Payload()
	pkgApp.LogInfo(ctx, h.logger, "Endereço do cliente: "+data.ID+", "+data.Name+" alterado para: "+data.Address, map[string]interface{}{
		"customer_id": data.ID,
		"address":     data.Address,
	})
	return nil
}
