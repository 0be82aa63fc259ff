package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderExists   = errors.New("order already exists")
)

type Order struct {
	id         string
	customerID string
	items      []OrderItem
}

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	order := &Order{id: id, customerID: customerID, items: append([]OrderItem(nil), items...)}
	if err := order.validate(); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *Order) validate() error {
	switch {
	case o.id == "":
		return fmt.Errorf("%w: id is required", ErrInvalidOrder)
	case o.customerID == "":
		return fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	case len(o.items) == 0:
		return fmt.Errorf("%w: items are required", ErrInvalidOrder)
	}
	return nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

func (o *Order) AddItem(item OrderItem) {
	o.items = append(o.items, item)
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// TotalOf soma o total de vários pedidos.
func TotalOf(orders []*Order) float64 {
	var total float64
	for _, order := range orders {
		total += order.Total()
	}
	return total
}

// OrderRepository define a interface para o repositório de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Find(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)
}
