package application

import (
	checkoutDomain "github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const FindOrderQueryName = "FindOrder"

type FindOrderData struct {
	OrderID string
}

type findOrderQuery struct {
	data FindOrderData
}

func (q findOrderQuery) QueryName() string {
	return FindOrderQueryName
}

func (q findOrderQuery) Payload() FindOrderData {
	return q.data
}

func NewFindOrderQuery(data FindOrderData) domain.Query[FindOrderData] {
	return findOrderQuery{data: data}
}

type OrderItemView struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type OrderView struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Items      []OrderItemView `json:"items"`
	Total      float64         `json:"total"`
}

func NewOrderView(order *checkoutDomain.Order) OrderView {
	items := order.Items()
	view := OrderView{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Items:      make([]OrderItemView, 0, len(items)),
		Total:      order.Total(),
	}
	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Total:     item.Total(),
		})
	}
	return view
}
