package create_appointment

import "time"

// Request модель запроса на создание встречи.
// Start и End - моменты времени, несущие часовой пояс клиента.
type Request struct {
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
}

// Response модель ответа с созданной встречей
type Response struct {
	ID          int64
	CustomerID  int64
	UserID      int64
	ContactID   int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
