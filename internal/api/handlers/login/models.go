package login

import (
	appointmentModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model.
// Imminent - встречи, начинающиеся в ближайшие минуты после входа.
type LoginResponse struct {
	UserID   int64                                    `json:"userId"`
	Username string                                   `json:"username"`
	Imminent []*appointmentModels.AppointmentResponse `json:"imminent"`
}
