package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/product/application"
	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

type ProductHTTPHandler struct {
	commandBus  pkgApp.CommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData]
	queryBus    pkgApp.QueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, application.ProductView]
	idGenerator pkgDomain.IDGenerator[string]
}

func NewProductHTTPHandler(
	commandBus pkgApp.CommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, application.ProductView],
	idGenerator pkgDomain.IDGenerator[string],
) *ProductHTTPHandler {
	return &ProductHTTPHandler{
		commandBus:  commandBus,
		queryBus:    queryBus,
		idGenerator: idGenerator,
	}
}

func (h *ProductHTTPHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var data application.CreateProductData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.ID = h.idGenerator()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.commandBus.Dispatch(ctx, application.NewCreateProductCommand(data)); err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"message": "Product created", "data": data}); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ProductHTTPHandler) HandleFindProduct(w http.ResponseWriter, r *http.Request) {
	query := application.NewFindProductQuery(application.FindProductData{
		ProductID: chi.URLParam(r, "productID"),
	})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(product); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ProductHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products/{productID}", h.HandleFindProduct)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidProduct):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
