package domain

import (
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const (
	CustomerCreatedEventName = "CustomerCreatedEvent"
	ChangeAddressEventName   = "ChangeAddressEvent"
)

// CustomerEventData é o payload comum aos eventos de cliente.
type CustomerEventData struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type CustomerEvent = pkgDomain.Event[CustomerEventData]

func NewCustomerCreatedEvent(data CustomerEventData) CustomerEvent {
	return pkgDomain.NewEvent(CustomerCreatedEventName, data)
}

func NewChangeAddressEvent(data CustomerEventData) CustomerEvent {
	return pkgDomain.NewEvent(ChangeAddressEventName, data)
}
