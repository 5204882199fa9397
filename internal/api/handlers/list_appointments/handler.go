package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments"
)

const (
	msgInvalidView          = "некорректный фильтр отображения, ожидается all, week или month"
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgAppointmentNotFound  = "встреча не найдена"
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

// Handle GET /api/v1/appointments?view=all|week|month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := domain.ViewAll
	if raw := r.URL.Query().Get("view"); raw != "" {
		view = domain.AppointmentView(raw)
	}

	result, err := h.appointmentsSvc.List(r.Context(), view, time.Now())
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidView) {
			h.logger.Warn("GET /appointments - Invalid view: %q", view)
			handlers.RespondBadRequest(w, msgInvalidView)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments (view=%s)", len(result.Appointments), view)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByID GET /api/v1/appointments/{appointmentId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.appointmentsSvc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/%d - Not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("GET /appointments/%d - Failed to get appointment: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
