package domain

import "fmt"

type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	switch {
	case id == "":
		return OrderItem{}, fmt.Errorf("%w: item id is required", ErrInvalidOrder)
	case name == "":
		return OrderItem{}, fmt.Errorf("%w: item name is required", ErrInvalidOrder)
	case productID == "":
		return OrderItem{}, fmt.Errorf("%w: item product id is required", ErrInvalidOrder)
	case price < 0:
		return OrderItem{}, fmt.Errorf("%w: item price must be greater than or equal to zero", ErrInvalidOrder)
	case quantity <= 0:
		return OrderItem{}, fmt.Errorf("%w: item quantity must be greater than zero", ErrInvalidOrder)
	}

	return OrderItem{id: id, name: name, price: price, productID: productID, quantity: quantity}, nil
}

func (i OrderItem) ID() string        { return i.id }
func (i OrderItem) Name() string      { return i.name }
func (i OrderItem) Price() float64    { return i.price }
func (i OrderItem) ProductID() string { return i.productID }
func (i OrderItem) Quantity() int     { return i.quantity }

func (i OrderItem) Total() float64 {
	return i.price * float64(i.quantity)
}
