package reports

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
)

const (
	msgInvalidContactID = "некорректный ID контакта"
)

type Handler struct {
	reportsSvc      ReportsService
	appointmentsSvc AppointmentsService
	logger          Logger
}

func NewHandler(reportsSvc ReportsService, appointmentsSvc AppointmentsService, logger Logger) *Handler {
	return &Handler{
		reportsSvc:      reportsSvc,
		appointmentsSvc: appointmentsSvc,
		logger:          logger,
	}
}

// HandleByType GET /api/v1/reports/appointments-by-type
func (h *Handler) HandleByType(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportsSvc.ByTypeAndMonth(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/appointments-by-type - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByCustomer GET /api/v1/reports/appointments-by-customer
func (h *Handler) HandleByCustomer(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportsSvc.ByCustomerAndMonth(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/appointments-by-customer - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByContact GET /api/v1/reports/appointments-by-contact
func (h *Handler) HandleByContact(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportsSvc.ByContactAndMonth(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/appointments-by-contact - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleContactSchedule GET /api/v1/contacts/{contactId}/schedule
func (h *Handler) HandleContactSchedule(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.ParseInt(mux.Vars(r)["contactId"], 10, 64)
	if err != nil || contactID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	result, err := h.appointmentsSvc.ContactSchedule(r.Context(), contactID)
	if err != nil {
		h.logger.Error("GET /contacts/%d/schedule - Failed to get schedule: %v", contactID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contacts/%d/schedule - Returned %d appointments", contactID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
