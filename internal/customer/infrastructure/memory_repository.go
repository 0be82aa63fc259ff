package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

// InMemoryCustomerRepository é uma implementação em memória do repositório de clientes.
type InMemoryCustomerRepository struct {
	mu     sync.RWMutex
	data   map[string]*domain.Customer
	logger application.AppLogger
}

func NewInMemoryCustomerRepository(logger application.AppLogger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		data:   make(map[string]*domain.Customer),
		logger: logger,
	}
}

func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[customer.ID()]; exists {
		application.LogInfo(ctx, r.logger, "customer already exists", map[string]interface{}{
			"id": customer.ID(),
		})
		return domain.ErrCustomerExists
	}

	stored, err := snapshot(customer)
	if err != nil {
		return err
	}
	r.data[customer.ID()] = stored

	application.LogInfo(ctx, r.logger, "customer saved", map[string]interface{}{
		"id": customer.ID(),
	})
	return nil
}

func (r *InMemoryCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[customer.ID()]; !exists {
		application.LogInfo(ctx, r.logger, "customer not found", map[string]interface{}{
			"id": customer.ID(),
		})
		return domain.ErrCustomerNotFound
	}

	stored, err := snapshot(customer)
	if err != nil {
		return err
	}
	r.data[customer.ID()] = stored

	application.LogInfo(ctx, r.logger, "customer updated", map[string]interface{}{
		"id": customer.ID(),
	})
	return nil
}

func (r *InMemoryCustomerRepository) Find(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.data[id]
	if !exists {
		return nil, domain.ErrCustomerNotFound
	}
	return snapshot(customer)
}

func (r *InMemoryCustomerRepository) FindAll(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*domain.Customer, 0, len(r.data))
	for _, customer := range r.data {
		stored, err := snapshot(customer)
		if err != nil {
			return nil, err
		}
		customers = append(customers, stored)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID() < customers[j].ID() })
	return customers, nil
}

// snapshot copia o estado persistível do cliente, sem eventos pendentes.
func snapshot(customer *domain.Customer) (*domain.Customer, error) {
	return domain.RestoreCustomer(
		customer.ID(),
		customer.Name(),
		customer.Address(),
		customer.IsActive(),
		customer.RewardPoints(),
	)
}
