package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidAddress = errors.New("invalid address")

// Address é um objeto de valor: dois endereços com os mesmos campos são iguais.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	address := Address{street: street, number: number, zip: zip, city: city}
	if err := address.validate(); err != nil {
		return Address{}, err
	}
	return address, nil
}

func (a Address) validate() error {
	switch {
	case a.street == "":
		return fmt.Errorf("%w: street is required", ErrInvalidAddress)
	case a.number <= 0:
		return fmt.Errorf("%w: number must be greater than zero", ErrInvalidAddress)
	case a.zip == "":
		return fmt.Errorf("%w: zip is required", ErrInvalidAddress)
	case a.city == "":
		return fmt.Errorf("%w: city is required", ErrInvalidAddress)
	}
	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

// IsZero indica um endereço ainda não informado.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
