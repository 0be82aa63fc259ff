package application

import (
	"context"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

// CustomerEventDispatcher é o despachante de eventos do contexto de clientes.
type CustomerEventDispatcher = pkgApp.EventDispatcher[domain.CustomerEvent, domain.CustomerEventData]

type createCustomerHandler struct {
	dispatcher CustomerEventDispatcher
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *createCustomerHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateCustomerData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	customer, err := domain.NewCustomer(data.ID, data.Name)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Cliente inválido", err, map[string]interface{}{"customer": data})
		return err
	}

	if err := h.repository.Create(ctx, customer); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao salvar cliente", err, map[string]interface{}{"id": data.ID})
		return err
	}

	return notifyAll(ctx, h.dispatcher, customer.PullEvents())
}

func NewCreateCustomerHandler(dispatcher CustomerEventDispatcher, repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateCustomerData], CreateCustomerData] {
	return &createCustomerHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type changeCustomerAddressHandler struct {
	dispatcher CustomerEventDispatcher
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *changeCustomerAddressHandler) Handle(ctx context.Context, command pkgDomain.Command[ChangeCustomerAddressData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	address, err := domain.NewAddress(data.Street, data.Number, data.Zip, data.City)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Endereço inválido", err, map[string]interface{}{"customer_id": data.CustomerID})
		return err
	}

	customer, err := h.repository.Find(ctx, data.CustomerID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao encontrar cliente", err, map[string]interface{}{"customer_id": data.CustomerID})
		return err
	}

	if err := customer.ChangeAddress(address); err != nil {
		return err
	}

	if err := h.repository.Update(ctx, customer); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao atualizar cliente", err, map[string]interface{}{"customer_id": data.CustomerID})
		return err
	}

	return notifyAll(ctx, h.dispatcher, customer.PullEvents())
}

func NewChangeCustomerAddressHandler(dispatcher CustomerEventDispatcher, repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[ChangeCustomerAddressData], ChangeCustomerAddressData] {
	return &changeCustomerAddressHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type findCustomerHandler struct {
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *findCustomerHandler) Handle(ctx context.Context, query pkgDomain.Query[FindCustomerData]) (CustomerView, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return CustomerView{}, ctx.Err()
	}

	data := query.Payload()
	customer, err := h.repository.Find(ctx, data.CustomerID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao encontrar cliente", err, map[string]interface{}{"customer_id": data.CustomerID})
		return CustomerView{}, err
	}

	return NewCustomerView(customer), nil
}

func NewFindCustomerHandler(repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindCustomerData], FindCustomerData, CustomerView] {
	return &findCustomerHandler{
		repository: repo,
		logger:     logger,
	}
}

// notifyAll publica os eventos na ordem em que foram registrados pela entidade.
func notifyAll(ctx context.Context, dispatcher CustomerEventDispatcher, events []domain.CustomerEvent) error {
	for _, event := range events {
		if err := dispatcher.Notify(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
