package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/application"
	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-ddd-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-ddd-events/pkg/domain"
)

const requestTimeout = 10 * time.Second

type CustomerHTTPHandler struct {
	createBus        pkgApp.CommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData]
	changeAddressBus pkgApp.CommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData]
	queryBus         pkgApp.QueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, application.CustomerView]
	idGenerator      pkgDomain.IDGenerator[string]
}

func NewCustomerHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateCustomerData], application.CreateCustomerData],
	changeAddressBus pkgApp.CommandBus[pkgDomain.Command[application.ChangeCustomerAddressData], application.ChangeCustomerAddressData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindCustomerData], application.FindCustomerData, application.CustomerView],
	idGenerator pkgDomain.IDGenerator[string],
) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{
		createBus:        createBus,
		changeAddressBus: changeAddressBus,
		queryBus:         queryBus,
		idGenerator:      idGenerator,
	}
}

func (h *CustomerHTTPHandler) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var data application.CreateCustomerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.ID = h.idGenerator()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.createBus.Dispatch(ctx, application.NewCreateCustomerCommand(data)); err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Customer created", "data": data})
}

func (h *CustomerHTTPHandler) HandleChangeAddress(w http.ResponseWriter, r *http.Request) {
	var data application.ChangeCustomerAddressData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.CustomerID = chi.URLParam(r, "customerID")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.changeAddressBus.Dispatch(ctx, application.NewChangeCustomerAddressCommand(data)); err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Customer address changed", "data": data})
}

func (h *CustomerHTTPHandler) HandleFindCustomer(w http.ResponseWriter, r *http.Request) {
	query := application.NewFindCustomerQuery(application.FindCustomerData{
		CustomerID: chi.URLParam(r, "customerID"),
	})

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	customer, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		handleError(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/customers", h.HandleCreateCustomer)
	router.Get("/customers/{customerID}", h.HandleFindCustomer)
	router.Put("/customers/{customerID}/address", h.HandleChangeAddress)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCustomerExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCustomer), errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
