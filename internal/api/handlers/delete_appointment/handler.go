package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgMissingType          = "не указан тип встречи"
	msgAppointmentNotFound  = "встреча не найдена"
	msgTypeMismatch         = "тип встречи не совпадает"
)

type Handler struct {
	appointmentsSvc AppointmentsService
	logger          Logger
}

func NewHandler(appointmentsSvc AppointmentsService, logger Logger) *Handler {
	return &Handler{
		appointmentsSvc: appointmentsSvc,
		logger:          logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}?type=...
// Тип в запросе должен совпадать с типом удаляемой встречи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appointmentType := r.URL.Query().Get("type")
	if appointmentType == "" {
		h.logger.Warn("DELETE /appointments/%d - Missing type parameter", id)
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	if err := h.appointmentsSvc.Delete(r.Context(), id, appointmentType); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/%d - Not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrTypeMismatch):
			h.logger.Warn("DELETE /appointments/%d - Type mismatch: requested=%q", id, appointmentType)
			handlers.RespondError(w, http.StatusConflict, msgTypeMismatch)

		default:
			h.logger.Error("DELETE /appointments/%d - Failed to delete appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/%d - Appointment deleted (type=%q)", id, appointmentType)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
