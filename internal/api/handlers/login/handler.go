package login

import (
	"errors"
	"net/http"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity"
	identityModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
)

type Handler struct {
	identitySvc     IdentityService
	appointmentsSvc AppointmentsService
	imminentWindow  time.Duration
	logger          Logger
}

// NewHandler создает handler входа в систему.
// imminentWindow - окно предупреждения о скорых встречах.
func NewHandler(identitySvc IdentityService, appointmentsSvc AppointmentsService, imminentWindow time.Duration, logger Logger) *Handler {
	return &Handler{
		identitySvc:     identitySvc,
		appointmentsSvc: appointmentsSvc,
		imminentWindow:  imminentWindow,
		logger:          logger,
	}
}

// Handle POST /api/v1/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.identitySvc.Login(r.Context(), &identityModels.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			h.logger.Warn("POST /login - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /login - Failed to authenticate: username=%q, error=%v", req.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &LoginResponse{
		UserID:   result.UserID,
		Username: result.Username,
	}

	// Предупреждение о встречах, начинающихся в ближайшие минуты.
	// Сбой проверки не должен ломать вход.
	imminent, err := h.appointmentsSvc.ImminentWithin(r.Context(), time.Now(), h.imminentWindow)
	if err != nil {
		h.logger.Error("POST /login - Failed to check imminent appointments: %v", err)
	} else {
		response.Imminent = imminent.Appointments
	}

	h.logger.Info("POST /login - User logged in: user_id=%d", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
