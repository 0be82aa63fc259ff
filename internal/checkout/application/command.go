package application

import (
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const PlaceOrderCommandName = "PlaceOrder"

type PlaceOrderItemData struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PlaceOrderData contém os dados necessários para registrar um pedido.
type PlaceOrderData struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id"`
	Items      []PlaceOrderItemData `json:"items"`
}

type placeOrderCommand struct {
	data PlaceOrderData
}

func (c placeOrderCommand) CommandName() string {
	return PlaceOrderCommandName
}

func (c placeOrderCommand) Payload() PlaceOrderData {
	return c.data
}

func NewPlaceOrderCommand(data PlaceOrderData) domain.Command[PlaceOrderData] {
	return placeOrderCommand{data: data}
}
