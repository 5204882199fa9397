package models

// LoginRequest запрос на вход в систему
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ответ при успешном входе
type LoginResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}
