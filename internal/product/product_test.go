package product_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mateusmacedo/go-ddd-events/internal/product"
	"github.com/mateusmacedo/go-ddd-events/internal/product/application"
	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/internal/product/infrastructure"
	pkgInfra "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func newRouter() (*chi.Mux, *pkgInfra.EventDispatcher[domain.ProductEvent, domain.ProductEventData]) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())
	dispatcher := pkgInfra.NewEventDispatcher[domain.ProductEvent, domain.ProductEventData](logger)
	slice := product.NewProductSlice(
		dispatcher,
		infrastructure.NewInMemoryProductRepository(logger),
		infrastructure.NewLogNotifier(logger),
		func() string { return "product-1" },
		logger,
	)

	router := chi.NewRouter()
	slice.RegisterRoutes(router)
	return router, dispatcher
}

func TestProductSlice_HTTPFlow(t *testing.T) {
	router, dispatcher := newRouter()

	handlers, found := dispatcher.HandlersFor(domain.ProductCreatedEventName)
	require.True(t, found)
	require.Len(t, handlers, 1)

	rec := httptest.NewRecorder()
	body := `{"name":"Product 1","description":"Product 1 description","price":10}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/product-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view application.ProductView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, application.ProductView{
		ID:          "product-1",
		Name:        "Product 1",
		Description: "Product 1 description",
		Price:       10,
	}, view)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProductSlice_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "malformed body", method: http.MethodPost, path: "/products", body: `[`, status: http.StatusBadRequest},
		{name: "negative price", method: http.MethodPost, path: "/products", body: `{"name":"P","price":-1}`, status: http.StatusBadRequest},
		{name: "unknown product", method: http.MethodGet, path: "/products/404", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
