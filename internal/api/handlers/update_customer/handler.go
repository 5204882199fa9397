package update_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidInput       = "не заполнены обязательные поля клиента"
	msgCustomerNotFound   = "клиент не найден"
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

// Handle PUT /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.customersSvc.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /customers/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /customers/%d - Not found", id)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("PUT /customers/%d - Failed to update customer: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /customers/%d - Customer updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
