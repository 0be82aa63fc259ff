package product

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/product/application"
	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/product/infrastructure"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
)

type ProductSlice struct {
	httpHandler *infrastructure.ProductHTTPHandler
}

func NewProductSlice(
	dispatcher application.ProductEventDispatcher,
	repository domain.ProductRepository,
	notifier application.Notifier,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *ProductSlice {
	commandBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData](logger)
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, application.ProductView](logger)

	commandBus.RegisterHandler(application.CreateProductCommandName, application.NewCreateProductHandler(dispatcher, repository, logger))
	queryBus.RegisterHandler(application.FindProductQueryName, application.NewFindProductHandler(repository, logger))

	dispatcher.Register(domain.ProductCreatedEventName, application.NewSendEmailWhenProductIsCreatedHandler(notifier))

	return &ProductSlice{
		httpHandler: infrastructure.NewProductHTTPHandler(commandBus, queryBus, idGenerator),
	}
}

func (s *ProductSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
