package application

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

type placeOrderHandler struct {
	repository  domain.OrderRepository
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
}

func (h *placeOrderHandler) Handle(ctx context.Context, command pkgDomain.Command[PlaceOrderData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	items := make([]domain.OrderItem, 0, len(data.Items))
	for _, itemData := range data.Items {
		item, err := domain.NewOrderItem(h.idGenerator(), itemData.Name, itemData.Price, itemData.ProductID, itemData.Quantity)
		if err != nil {
			pkgApp.LogError(ctx, h.logger, "Item inválido", err, map[string]interface{}{"item": itemData})
			return err
		}
		items = append(items, item)
	}

	order, err := domain.NewOrder(data.ID, data.CustomerID, items)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Pedido inválido", err, map[string]interface{}{"order_id": data.ID})
		return err
	}

	h.logger.Info(ctx, "Salvando pedido", map[string]interface{}{"id": data.ID, "total": order.Total()})
	if err := h.repository.Create(ctx, order); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao salvar pedido", err, map[string]interface{}{"id": data.ID})
		return err
	}
	return nil
}

func NewPlaceOrderHandler(repo domain.OrderRepository, idGenerator pkgDomain.IDGenerator[string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[PlaceOrderData], PlaceOrderData] {
	return &placeOrderHandler{
		repository:  repo,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

type findOrderHandler struct {
	repository domain.OrderRepository
	logger     pkgApp.AppLogger
}

func (h *findOrderHandler) Handle(ctx context.Context, query pkgDomain.Query[FindOrderData]) (OrderView, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return OrderView{}, ctx.Err()
	}

	data := query.Payload()
	order, err := h.repository.Find(ctx, data.OrderID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao encontrar pedido", err, map[string]interface{}{"order_id": data.OrderID})
		return OrderView{}, err
	}

	return NewOrderView(order), nil
}

func NewFindOrderHandler(repo domain.OrderRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindOrderData], FindOrderData, OrderView] {
	return &findOrderHandler{
		repository: repo,
		logger:     logger,
	}
}
