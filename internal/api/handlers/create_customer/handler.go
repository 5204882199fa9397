package create_customer

import (
	"errors"
	"net/http"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля клиента"
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.customersSvc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, customers.ErrInvalidInput) {
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /customers - Failed to create customer: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /customers - Customer created: customer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
