package create_appointment

import (
	"errors"
	"strings"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("create_appointment: contact not found")

	// ErrUserNotFound возвращается, когда сотрудник не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError возвращается, когда встреча нарушает правила планирования.
// Нарушения - это данные для клиента, а не сбой инфраструктуры.
type ValidationError struct {
	Result scheduling.Result
}

// Error возвращает все сообщения о нарушениях одной строкой
func (e *ValidationError) Error() string {
	return strings.Join(e.Result.Messages(), " ")
}
