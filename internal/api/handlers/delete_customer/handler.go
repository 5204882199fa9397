package delete_customer

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

// Handle DELETE /api/v1/customers/{customerId}
// Вместе с клиентом удаляются все его встречи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.customersSvc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			h.logger.Warn("DELETE /customers/%d - Not found", id)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("DELETE /customers/%d - Failed to delete customer: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /customers/%d - Customer deleted with %d appointments", id, result.DeletedAppointments)
	handlers.RespondJSON(w, http.StatusOK, result)
}
