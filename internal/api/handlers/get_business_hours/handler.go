package get_business_hours

import (
	"net/http"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
)

const (
	msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidZone = "некорректный часовой пояс, ожидается IANA имя"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// SlotsResponse доступные времена начала встреч на выбранный день
type SlotsResponse struct {
	Date     string   `json:"date"`
	TimeZone string   `json:"timeZone"`
	Slots    []string `json:"slots"`
}

type Handler struct {
	hours           scheduling.BusinessHours
	slotWindowHours int
	logger          Logger
}

// NewHandler создает handler доступных слотов.
// slotWindowHours - ширина окна предлагаемых времен начала.
func NewHandler(hours scheduling.BusinessHours, slotWindowHours int, logger Logger) *Handler {
	return &Handler{
		hours:           hours,
		slotWindowHours: slotWindowHours,
		logger:          logger,
	}
}

// Handle GET /api/v1/business-hours?date=YYYY-MM-DD&timeZone=...
// Слоты считаются от открытия в поясе бизнеса и отдаются в поясе клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("timeZone")
	if zone == "" {
		zone = h.hours.Location().String()
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		h.logger.Warn("GET /business-hours - Unknown time zone %q", zone)
		handlers.RespondBadRequest(w, msgInvalidZone)
		return
	}

	dateRaw := r.URL.Query().Get("date")
	day, err := time.ParseInLocation(domain.DateFormat, dateRaw, loc)
	if err != nil {
		h.logger.Warn("GET /business-hours - Invalid date %q", dateRaw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots := h.hours.StartSlots(day, h.slotWindowHours, loc)
	formatted := make([]string, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, slot.Format(domain.DateTimeFormat))
	}

	h.logger.Info("GET /business-hours - Returned %d slots for %s (%s)", len(formatted), dateRaw, zone)
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Date:     dateRaw,
		TimeZone: zone,
		Slots:    formatted,
	})
}
