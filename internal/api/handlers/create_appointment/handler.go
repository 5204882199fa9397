package create_appointment

import (
	"errors"
	"net/http"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/middleware"
	createAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректное время или часовой пояс, ожидается YYYY-MM-DDTHH:MM и IANA имя пояса"
	msgCustomerNotFound   = "клиент не найден"
	msgContactNotFound    = "контакт не найден"
	msgUserNotFound       = "сотрудник не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Если userId не указан, встреча закрепляется за вошедшим сотрудником
	if req.UserID == 0 {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			req.UserID = userID
		}
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createAppointment.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: customer_id=%d, violations=%d",
				req.CustomerID, len(validationErr.Result.Violations))
			handlers.RespondValidationFailure(w, validationErr.Result.Messages())

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrContactNotFound):
			h.logger.Warn("POST /appointments - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			h.logger.Warn("POST /appointments - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response, err := FromUseCaseResponse(result, req.TimeZone)
	if err != nil {
		h.logger.Error("POST /appointments - Failed to format response: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d",
		result.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
