package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mateusmacedo/go-ddd-events/internal/product/application"
	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/product/infrastructure"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

type notification struct {
	subject string
	body    string
}

type fakeNotifier struct {
	sent []notification
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, subject, body string) error {
	n.sent = append(n.sent, notification{subject: subject, body: body})
	return n.err
}

func TestSendEmailWhenProductIsCreatedHandler(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	dispatcher := pkgInfra.NewEventDispatcher[domain.ProductEvent, domain.ProductEventData](logger)
	notifier := &fakeNotifier{}
	handler := application.NewSendEmailWhenProductIsCreatedHandler(notifier)

	dispatcher.Register(domain.ProductCreatedEventName, handler)
	handlers, found := dispatcher.HandlersFor(domain.ProductCreatedEventName)
	require.True(t, found)
	require.Len(t, handlers, 1)
	assert.Same(t, handler, handlers[0])

	event := domain.NewProductCreatedEvent(domain.ProductEventData{
		Name:        "Product 1",
		Description: "Product 1 description",
		Price:       10.0,
	})
	require.NoError(t, dispatcher.Notify(context.Background(), event))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Product created: Product 1", notifier.sent[0].subject)
	assert.Equal(t, "Product 1 (Product 1 description) is now available for 10.00", notifier.sent[0].body)
}

func TestSendEmailWhenProductIsCreatedHandler_PropagatesError(t *testing.T) {
	errSMTP := errors.New("smtp down")
	handler := application.NewSendEmailWhenProductIsCreatedHandler(&fakeNotifier{err: errSMTP})

	err := handler.Handle(context.Background(), domain.NewProductCreatedEvent(domain.ProductEventData{Name: "P"}))

	assert.ErrorIs(t, err, errSMTP)
}

func TestCreateProductHandler(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	dispatcher := pkgInfra.NewEventDispatcher[domain.ProductEvent, domain.ProductEventData](logger)
	repository := infrastructure.NewInMemoryProductRepository(logger)
	notifier := &fakeNotifier{}
	dispatcher.Register(domain.ProductCreatedEventName, application.NewSendEmailWhenProductIsCreatedHandler(notifier))

	handler := application.NewCreateProductHandler(dispatcher, repository, logger)
	err := handler.Handle(context.Background(), application.NewCreateProductCommand(application.CreateProductData{
		ID:    "p1",
		Name:  "Product 1",
		Price: 10,
	}))
	require.NoError(t, err)

	stored, err := repository.Find(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Price())
	assert.Len(t, notifier.sent, 1)

	err = handler.Handle(context.Background(), application.NewCreateProductCommand(application.CreateProductData{ID: "p2", Price: 1}))
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	err = handler.Handle(context.Background(), application.NewCreateProductCommand(application.CreateProductData{ID: "p1", Name: "Again"}))
	assert.ErrorIs(t, err, domain.ErrProductExists)
	assert.Len(t, notifier.sent, 1)
}

func TestFindProductHandler(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	repository := infrastructure.NewInMemoryProductRepository(logger)
	product, err := domain.NewProduct("p1", "Product 1", "desc", 10)
	require.NoError(t, err)
	require.NoError(t, repository.Create(context.Background(), product))

	handler := application.NewFindProductHandler(repository, logger)

	view, err := handler.Handle(context.Background(), application.NewFindProductQuery(application.FindProductData{ProductID: "p1"}))
	require.NoError(t, err)
	assert.Equal(t, application.ProductView{ID: "p1", Name: "Product 1", Description: "desc", Price: 10}, view)

	_, err = handler.Handle(context.Background(), application.NewFindProductQuery(application.FindProductData{ProductID: "p2"}))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
