package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/middleware"
	updateAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgInvalidTime          = "некорректное время или часовой пояс, ожидается YYYY-MM-DDTHH:MM и IANA имя пояса"
	msgAppointmentNotFound  = "встреча не найдена"
	msgCustomerNotFound     = "клиент не найден"
	msgContactNotFound      = "контакт не найден"
	msgUserNotFound         = "сотрудник не найден"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Если userId не указан, встреча закрепляется за вошедшим сотрудником
	if req.UserID == 0 {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			req.UserID = userID
		}
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /appointments/%d - Failed to parse times: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *updateAppointment.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /appointments/%d - Validation failed: violations=%d",
				id, len(validationErr.Result.Violations))
			handlers.RespondValidationFailure(w, validationErr.Result.Messages())

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%d - Not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrCustomerNotFound):
			h.logger.Warn("PUT /appointments/%d - Customer not found: customer_id=%d", id, req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, updateAppointment.ErrContactNotFound):
			h.logger.Warn("PUT /appointments/%d - Contact not found: contact_id=%d", id, req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		case errors.Is(err, updateAppointment.ErrUserNotFound):
			h.logger.Warn("PUT /appointments/%d - User not found: user_id=%d", id, req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/%d - Failed to update appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response, err := FromUseCaseResponse(result, req.TimeZone)
	if err != nil {
		h.logger.Error("PUT /appointments/%d - Failed to format response: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /appointments/%d - Appointment updated", id)
	handlers.RespondJSON(w, http.StatusOK, response)
}
