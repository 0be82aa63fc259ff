package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

type Product struct {
	id          string
	name        string
	description string
	price       float64

	events []ProductEvent
}

// NewProduct cria um produto e registra o ProductCreatedEvent.
func NewProduct(id, name, description string, price float64) (*Product, error) {
	product := &Product{id: id, name: name, description: description, price: price}
	if err := product.validate(); err != nil {
		return nil, err
	}

	product.events = append(product.events, NewProductCreatedEvent(ProductEventData{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
	}))
	return product, nil
}

// RestoreProduct reconstrói um produto persistido sem registrar eventos.
func RestoreProduct(id, name, description string, price float64) (*Product, error) {
	product := &Product{id: id, name: name, description: description, price: price}
	if err := product.validate(); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *Product) validate() error {
	switch {
	case p.id == "":
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	case p.name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.price < 0:
		return fmt.Errorf("%w: price must be greater than or equal to zero", ErrInvalidProduct)
	}
	return nil
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() float64      { return p.price }

func (p *Product) ChangeName(name string) error {
	previous := p.name
	p.name = name
	if err := p.validate(); err != nil {
		p.name = previous
		return err
	}
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	previous := p.price
	p.price = price
	if err := p.validate(); err != nil {
		p.price = previous
		return err
	}
	return nil
}

// PullEvents devolve os eventos registrados e esvazia a lista.
func (p *Product) PullEvents() []ProductEvent {
	events := p.events
	p.events = nil
	return events
}

// ProductRepository define a interface para o repositório de produtos.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Find(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
}
