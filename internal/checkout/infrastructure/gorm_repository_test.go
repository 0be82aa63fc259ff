package infrastructure_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/checkout/infrastructure"
	gormAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/gorm/adapter"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func newRepository(t *testing.T) domain.OrderRepository {
	t.Helper()
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())

	db, err := gormAdapter.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	require.NoError(t, err)
	repo, err := infrastructure.NewGormOrderRepository(db, logger)
	require.NoError(t, err)
	return repo
}

func newItem(t *testing.T, id string, price float64, quantity int) domain.OrderItem {
	t.Helper()
	item, err := domain.NewOrderItem(id, "Product "+id, price, "p"+id, quantity)
	require.NoError(t, err)
	return item
}

func TestGormOrderRepository_CreateAndFind(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	order, err := domain.NewOrder("123", "c1", []domain.OrderItem{newItem(t, "1", 10, 2), newItem(t, "2", 5, 1)})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, order))
	assert.ErrorIs(t, repo.Create(ctx, order), domain.ErrOrderExists)

	found, err := repo.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.CustomerID())
	assert.Equal(t, 25.0, found.Total())
	assert.Equal(t, order.Items(), found.Items())

	_, err = repo.Find(ctx, "404")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGormOrderRepository_UpdateReplacesItems(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	order, err := domain.NewOrder("123", "c1", []domain.OrderItem{newItem(t, "1", 10, 2)})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, order))

	updated, err := domain.NewOrder("123", "c1", []domain.OrderItem{newItem(t, "2", 7, 1), newItem(t, "3", 3, 3)})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, updated))

	found, err := repo.Find(ctx, "123")
	require.NoError(t, err)
	require.Len(t, found.Items(), 2)
	assert.Equal(t, "2", found.Items()[0].ID())
	assert.Equal(t, "3", found.Items()[1].ID())
	assert.Equal(t, 16.0, found.Total())

	missing, err := domain.NewOrder("404", "c1", []domain.OrderItem{newItem(t, "9", 1, 1)})
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrOrderNotFound)
}

func TestGormOrderRepository_FindAll(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	for _, id := range []string{"o2", "o1"} {
		order, err := domain.NewOrder(id, "c1", []domain.OrderItem{newItem(t, id+"-1", 10, 1)})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, order))
	}

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID())
	assert.Equal(t, 20.0, domain.TotalOf(orders))
}
