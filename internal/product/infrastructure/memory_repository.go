package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

// InMemoryProductRepository é uma implementação em memória do repositório de produtos.
type InMemoryProductRepository struct {
	mu     sync.RWMutex
	data   map[string]*domain.Product
	logger application.AppLogger
}

func NewInMemoryProductRepository(logger application.AppLogger) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		data:   make(map[string]*domain.Product),
		logger: logger,
	}
}

func (r *InMemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[product.ID()]; exists {
		return domain.ErrProductExists
	}
	return r.store(ctx, product, "product saved")
}

func (r *InMemoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[product.ID()]; !exists {
		return domain.ErrProductNotFound
	}
	return r.store(ctx, product, "product updated")
}

func (r *InMemoryProductRepository) store(ctx context.Context, product *domain.Product, message string) error {
	stored, err := domain.RestoreProduct(product.ID(), product.Name(), product.Description(), product.Price())
	if err != nil {
		return err
	}
	r.data[product.ID()] = stored

	application.LogInfo(ctx, r.logger, message, map[string]interface{}{
		"id": product.ID(),
	})
	return nil
}

func (r *InMemoryProductRepository) Find(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.data[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return domain.RestoreProduct(product.ID(), product.Name(), product.Description(), product.Price())
}

func (r *InMemoryProductRepository) FindAll(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.data))
	for _, product := range r.data {
		stored, err := domain.RestoreProduct(product.ID(), product.Name(), product.Description(), product.Price())
		if err != nil {
			return nil, err
		}
		products = append(products, stored)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID() < products[j].ID() })
	return products, nil
}
