package application

import (
	customerDomain "github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const FindCustomerQueryName = "FindCustomer"

type FindCustomerData struct {
	CustomerID string
}

type findCustomerQuery struct {
	data FindCustomerData
}

func (q findCustomerQuery) QueryName() string {
	return FindCustomerQueryName
}

func (q findCustomerQuery) Payload() FindCustomerData {
	return q.data
}

func NewFindCustomerQuery(data FindCustomerData) domain.Query[FindCustomerData] {
	return findCustomerQuery{data: data}
}

// CustomerView é a representação de leitura de um cliente.
type CustomerView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      *AddressView `json:"address,omitempty"`
	Active       bool         `json:"active"`
	RewardPoints int          `json:"rewardPoints"`
}

type AddressView struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

func NewCustomerView(customer *customerDomain.Customer) CustomerView {
	view := CustomerView{
		ID:           customer.ID(),
		Name:         customer.Name(),
		Active:       customer.IsActive(),
		RewardPoints: customer.RewardPoints(),
	}
	if address := customer.Address(); !address.IsZero() {
		view.Address = &AddressView{
			Street: address.Street(),
			Number: address.Number(),
			Zip:    address.Zip(),
			City:   address.City(),
		}
	}
	return view
}
