package domain

import (
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const ProductCreatedEventName = "ProductCreatedEvent"

type ProductEventData struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductEvent = pkgDomain.Event[ProductEventData]

func NewProductCreatedEvent(data ProductEventData) ProductEvent {
	return pkgDomain.NewEvent(ProductCreatedEventName, data)
}
