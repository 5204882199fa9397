package reference

import "errors"

var (
	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("reference.repository: contact not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reference.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reference.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reference.repository: failed to scan row")
)
