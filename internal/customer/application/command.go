package application

import (
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const (
	CreateCustomerCommandName        = "CreateCustomer"
	ChangeCustomerAddressCommandName = "ChangeCustomerAddress"
)

// CreateCustomerData contém os dados necessários para cadastrar um cliente.
type CreateCustomerData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type createCustomerCommand struct {
	data CreateCustomerData
}

func (c createCustomerCommand) CommandName() string {
	return CreateCustomerCommandName
}

func (c createCustomerCommand) Payload() CreateCustomerData {
	return c.data
}

func NewCreateCustomerCommand(data CreateCustomerData) domain.Command[CreateCustomerData] {
	return createCustomerCommand{data: data}
}

// ChangeCustomerAddressData contém o novo endereço de um cliente existente.
type ChangeCustomerAddressData struct {
	CustomerID string `json:"customerId"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Zip        string `json:"zip"`
	City       string `json:"city"`
}

type changeCustomerAddressCommand struct {
	data ChangeCustomerAddressData
}

func (c changeCustomerAddressCommand) CommandName() string {
	return ChangeCustomerAddressCommandName
}

func (c changeCustomerAddressCommand) Payload() ChangeCustomerAddressData {
	return c.data
}

func NewChangeCustomerAddressCommand(data ChangeCustomerAddressData) domain.Command[ChangeCustomerAddressData] {
	return changeCustomerAddressCommand{data: data}
}
