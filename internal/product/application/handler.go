package application

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

type ProductEventDispatcher = pkgApp.EventDispatcher[domain.ProductEvent, domain.ProductEventData]

type createProductHandler struct {
	dispatcher ProductEventDispatcher
	repository domain.ProductRepository
	logger     pkgApp.AppLogger
}

func (h *createProductHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateProductData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	product, err := domain.NewProduct(data.ID, data.Name, data.Description, data.Price)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Produto inválido", err, map[string]interface{}{"product": data})
		return err
	}

	h.logger.Info(ctx, "Salvando produto", map[string]interface{}{"id": data.ID})
	if err := h.repository.Create(ctx, product); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao salvar produto", err, map[string]interface{}{"id": data.ID})
		return err
	}

	for _, event := range product.PullEvents() {
		if err := h.dispatcher.Notify(ctx, event); err != nil {
			pkgApp.LogError(ctx, h.logger, "Erro ao notificar evento", err, map[string]interface{}{"event_name": event.EventName()})
			return err
		}
	}
	return nil
}

func NewCreateProductHandler(dispatcher ProductEventDispatcher, repo domain.ProductRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateProductData], CreateProductData] {
	return &createProductHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type findProductHandler struct {
	repository domain.ProductRepository
	logger     pkgApp.AppLogger
}

func (h *findProductHandler) Handle(ctx context.Context, query pkgDomain.Query[FindProductData]) (ProductView, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ProductView{}, ctx.Err()
	}

	data := query.Payload()
	product, err := h.repository.Find(ctx, data.ProductID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao encontrar produto", err, map[string]interface{}{"product_id": data.ProductID})
		return ProductView{}, err
	}

	return NewProductView(product), nil
}

func NewFindProductHandler(repo domain.ProductRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindProductData], FindProductData, ProductView] {
	return &findProductHandler{
		repository: repo,
		logger:     logger,
	}
}
