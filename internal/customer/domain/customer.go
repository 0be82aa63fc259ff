package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidCustomer     = errors.New("invalid customer")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrAddressRequired     = errors.New("address is mandatory to activate a customer")
	ErrInvalidRewardPoints = errors.New("reward points must be positive")
)

// Customer é a raiz do agregado de clientes. As mudanças de estado relevantes
// ficam registradas como eventos até serem retiradas com PullEvents.
type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints int

	events []CustomerEvent
}

// NewCustomer cria um cliente e registra o CustomerCreatedEvent.
func NewCustomer(id, name string) (*Customer, error) {
	customer := &Customer{id: id, name: name}
	if err := customer.validate(); err != nil {
		return nil, err
	}

	customer.record(NewCustomerCreatedEvent(customer.eventData()))
	return customer, nil
}

// RestoreCustomer reconstrói um cliente persistido sem registrar eventos.
func RestoreCustomer(id, name string, address Address, active bool, rewardPoints int) (*Customer, error) {
	customer := &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidCustomer)
	}
	if c.name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	return nil
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Address() Address  { return c.address }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	c.name = name
	return nil
}

// ChangeAddress troca o endereço e registra o ChangeAddressEvent.
func (c *Customer) ChangeAddress(address Address) error {
	if address.IsZero() {
		return ErrInvalidAddress
	}
	c.address = address
	c.record(NewChangeAddressEvent(c.eventData()))
	return nil
}

func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressRequired
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points <= 0 {
		return ErrInvalidRewardPoints
	}
	c.rewardPoints += points
	return nil
}

// PullEvents devolve os eventos registrados e esvazia a lista.
func (c *Customer) PullEvents() []CustomerEvent {
	events := c.events
	c.events = nil
	return events
}

func (c *Customer) record(event CustomerEvent) {
	c.events = append(c.events, event)
}

func (c *Customer) eventData() CustomerEventData {
	data := CustomerEventData{ID: c.id, Name: c.name}
	if !c.address.IsZero() {
		data.Address = c.address.String()
	}
	return data
}

// CustomerRepository define a interface para o repositório de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Find(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
}
