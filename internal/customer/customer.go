package customer

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/application"
	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/customer/infrastructure"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
)

type CustomerSlice struct {
	httpHandler *infrastructure.CustomerHTTPHandler
}

// NewCustomerSlice registra os manipuladores de comando, consulta e evento do
// contexto de clientes e monta o handler HTTP.
func NewCustomerSlice(
	dispatcher application.CustomerEventDispatcher,
	repository domain.CustomerRepository,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *CustomerSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData](logger)
	changeAddressBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData](logger)
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, application.CustomerView](logger)

	createBus.RegisterHandler(application.CreateCustomerCommandName, application.NewCreateCustomerHandler(dispatcher, repository, logger))
	changeAddressBus.RegisterHandler(application.ChangeCustomerAddressCommandName, application.NewChangeCustomerAddressHandler(dispatcher, repository, logger))
	queryBus.RegisterHandler(application.FindCustomerQueryName, application.NewFindCustomerHandler(repository, logger))

	dispatcher.Register(domain.CustomerCreatedEventName, application.NewLogWhenCustomerIsCreatedHandler(logger))
	dispatcher.Register(domain.CustomerCreatedEventName, application.NewLogWhenCustomerIsCreatedSecondHandler(logger))
	dispatcher.Register(domain.ChangeAddressEventName, application.NewChangeAddressHandler(logger))

	return &CustomerSlice{
		httpHandler: infrastructure.NewCustomerHTTPHandler(createBus, changeAddressBus, queryBus, idGenerator),
	}
}

func (s *CustomerSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
