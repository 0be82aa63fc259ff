package application

import (
	productDomain "github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const FindProductQueryName = "FindProduct"

type FindProductData struct {
	ProductID string
}

type findProductQuery struct {
	data FindProductData
}

func (q findProductQuery) QueryName() string {
	return FindProductQueryName
}

func (q findProductQuery) Payload() FindProductData {
	return q.data
}

func NewFindProductQuery(data FindProductData) domain.Query[FindProductData] {
	return findProductQuery{data: data}
}

type ProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewProductView(product *productDomain.Product) ProductView {
	return ProductView{
		ID:          product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       product.Price(),
	}
}
