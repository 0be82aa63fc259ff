package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout/application"
	"github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

type OrderHTTPHandler struct {
	commandBus  pkgApp.CommandBus[pkgDomain.Command[application.PlaceOrderData], application.PlaceOrderData]
	queryBus    pkgApp.QueryBus[pkgDomain.Query[application.FindOrderData], application.FindOrderData, application.OrderView]
	idGenerator pkgDomain.IDGenerator[string]
}

func NewOrderHTTPHandler(
	commandBus pkgApp.CommandBus[pkgDomain.Command[application.PlaceOrderData], application.PlaceOrderData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindOrderData], application.FindOrderData, application.OrderView],
	idGenerator pkgDomain.IDGenerator[string],
) *OrderHTTPHandler {
	return &OrderHTTPHandler{
		commandBus:  commandBus,
		queryBus:    queryBus,
		idGenerator: idGenerator,
	}
}

func (h *OrderHTTPHandler) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var data application.PlaceOrderData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.ID = h.idGenerator()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.commandBus.Dispatch(ctx, application.NewPlaceOrderCommand(data)); err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"message": "Order placed", "data": data}); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *OrderHTTPHandler) HandleFindOrder(w http.ResponseWriter, r *http.Request) {
	query := application.NewFindOrderQuery(application.FindOrderData{
		OrderID: chi.URLParam(r, "orderID"),
	})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *OrderHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/orders", h.HandlePlaceOrder)
	router.Get("/orders/{orderID}", h.HandleFindOrder)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOrderExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
