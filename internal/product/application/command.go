package application

import (
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const CreateProductCommandName = "CreateProduct"

// CreateProductData contém os dados necessários para cadastrar um produto.
type CreateProductData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type createProductCommand struct {
	data CreateProductData
}

func (c createProductCommand) CommandName() string {
	return CreateProductCommandName
}

func (c createProductCommand) Payload() CreateProductData {
	return c.data
}

func NewCreateProductCommand(data CreateProductData) domain.Command[CreateProductData] {
	return createProductCommand{data: data}
}
