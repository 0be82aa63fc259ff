package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
)

func TestNewProduct_RecordsCreatedEvent(t *testing.T) {
	product, err := domain.NewProduct("p1", "Product 1", "Product 1 description", 10.0)
	require.NoError(t, err)

	events := product.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, domain.ProductCreatedEventName, events[0].EventName())
	assert.Equal(t, domain.ProductEventData{
		ID:          "p1",
		Name:        "Product 1",
		Description: "Product 1 description",
		Price:       10.0,
	}, events[0].Payload())
	assert.Empty(t, product.PullEvents())
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		productName string
		price       float64
	}{
		{name: "missing id", productName: "Product", price: 1},
		{name: "missing name", id: "p1", price: 1},
		{name: "negative price", id: "p1", productName: "Product", price: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewProduct(tt.id, tt.productName, "", tt.price)
			assert.ErrorIs(t, err, domain.ErrInvalidProduct)
		})
	}
}

func TestProduct_Changes(t *testing.T) {
	product, err := domain.RestoreProduct("p1", "Product 1", "", 10)
	require.NoError(t, err)
	assert.Empty(t, product.PullEvents())

	require.NoError(t, product.ChangeName("Product 2"))
	require.NoError(t, product.ChangePrice(20))
	assert.Equal(t, "Product 2", product.Name())
	assert.Equal(t, 20.0, product.Price())

	assert.ErrorIs(t, product.ChangeName(""), domain.ErrInvalidProduct)
	assert.ErrorIs(t, product.ChangePrice(-5), domain.ErrInvalidProduct)
	assert.Equal(t, "Product 2", product.Name())
	assert.Equal(t, 20.0, product.Price())
}
