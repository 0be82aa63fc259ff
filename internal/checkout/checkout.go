package checkout

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout/application"
	"github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/checkout/infrastructure"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
)

type CheckoutSlice struct {
	httpHandler *infrastructure.OrderHTTPHandler
}

func NewCheckoutSlice(
	repository domain.OrderRepository,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *CheckoutSlice {
	commandBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.PlaceOrderData], application.PlaceOrderData](logger)
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindOrderData], application.FindOrderData, application.OrderView](logger)

	commandBus.RegisterHandler(application.PlaceOrderCommandName, application.NewPlaceOrderHandler(repository, idGenerator, logger))
	queryBus.RegisterHandler(application.FindOrderQueryName, application.NewFindOrderHandler(repository, logger))

	return &CheckoutSlice{
		httpHandler: infrastructure.NewOrderHTTPHandler(commandBus, queryBus, idGenerator),
	}
}

func (s *CheckoutSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
