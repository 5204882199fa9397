package report

import (
	"context"
	"fmt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/dbmetrics"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/psqlbuilder"
)

// Repository репозиторий агрегированных отчетов по встречам
type Repository struct {
	db DBExecutor
	// Отчеты агрегируют по времени в часовом поясе бизнеса, поэтому start_at
	// переводится в него прямо в запросе перед извлечением года и месяца.
	zoneExpr string
}

// NewRepository создает новый экземпляр репозитория отчетов.
// businessZone - IANA имя часового пояса бизнеса, например America/New_York.
func NewRepository(db DBExecutor, businessZone string) *Repository {
	return &Repository{
		db:       db,
		zoneExpr: fmt.Sprintf("a.start_at AT TIME ZONE '%s'", businessZone),
	}
}

// CountByTypeAndMonth возвращает количество встреч по типу и месяцу
func (r *Repository) CountByTypeAndMonth(ctx context.Context) ([]*domain.TypeMonthlyCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		fmt.Sprintf("EXTRACT(YEAR FROM %s)::int AS year", r.zoneExpr),
		fmt.Sprintf("TRIM(to_char(%s, 'Month')) AS month", r.zoneExpr),
		"a.type",
		"COUNT(*) AS count",
	).
		From("appointments a").
		GroupBy("year", "month", "a.type").
		OrderBy("year", "MIN(a.start_at)", "a.type").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypeAndMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypeAndMonth - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.TypeMonthlyCount
	for rows.Next() {
		var row domain.TypeMonthlyCount
		if err := rows.Scan(&row.Year, &row.Month, &row.Type, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByTypeAndMonth - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByTypeAndMonth - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// CountByCustomerAndMonth возвращает количество встреч по клиенту и месяцу
func (r *Repository) CountByCustomerAndMonth(ctx context.Context) ([]*domain.CustomerMonthlyCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		fmt.Sprintf("EXTRACT(YEAR FROM %s)::int AS year", r.zoneExpr),
		fmt.Sprintf("TRIM(to_char(%s, 'Month')) AS month", r.zoneExpr),
		"c.id AS customer_id",
		"c.name AS customer_name",
		"COUNT(*) AS count",
	).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id").
		GroupBy("year", "month", "c.id", "c.name").
		OrderBy("year", "MIN(a.start_at)", "c.name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByCustomerAndMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByCustomerAndMonth - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.CustomerMonthlyCount
	for rows.Next() {
		var row domain.CustomerMonthlyCount
		if err := rows.Scan(&row.Year, &row.Month, &row.CustomerID, &row.CustomerName, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByCustomerAndMonth - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByCustomerAndMonth - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// CountByContactAndMonth возвращает количество встреч по контакту и месяцу
func (r *Repository) CountByContactAndMonth(ctx context.Context) ([]*domain.ContactMonthlyCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		fmt.Sprintf("EXTRACT(YEAR FROM %s)::int AS year", r.zoneExpr),
		fmt.Sprintf("TRIM(to_char(%s, 'Month')) AS month", r.zoneExpr),
		"ct.id AS contact_id",
		"ct.name AS contact_name",
		"COUNT(*) AS count",
	).
		From("appointments a").
		Join("contacts ct ON ct.id = a.contact_id").
		GroupBy("year", "month", "ct.id", "ct.name").
		OrderBy("year", "MIN(a.start_at)", "ct.name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByContactAndMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByContactAndMonth - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.ContactMonthlyCount
	for rows.Next() {
		var row domain.ContactMonthlyCount
		if err := rows.Scan(&row.Year, &row.Month, &row.ContactID, &row.ContactName, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByContactAndMonth - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByContactAndMonth - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}
