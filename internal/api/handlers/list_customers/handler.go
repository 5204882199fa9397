package list_customers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgCustomerNotFound  = "клиент не найден"
)

type Handler struct {
	customersSvc CustomersService
	logger       Logger
}

func NewHandler(customersSvc CustomersService, logger Logger) *Handler {
	return &Handler{
		customersSvc: customersSvc,
		logger:       logger,
	}
}

// Handle GET /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.customersSvc.List(r.Context())
	if err != nil {
		h.logger.Error("GET /customers - Failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Returned %d customers", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByID GET /api/v1/customers/{customerId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.customersSvc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			h.logger.Warn("GET /customers/%d - Not found", id)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /customers/%d - Failed to get customer: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
