package reference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/dbmetrics"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: контакты, страны, регионы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Contacts возвращает список всех контактов
func (r *Repository) Contacts(ctx context.Context) ([]*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email").
		From("contacts").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Contacts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Contacts - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email); err != nil {
			return nil, fmt.Errorf("%w: Contacts - scan row: %v", ErrScanRow, err)
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Contacts - iterate rows: %v", ErrExecQuery, err)
	}

	return contacts, nil
}

// GetContact получает контакт по ID
func (r *Repository) GetContact(ctx context.Context, id int64) (*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email").
		From("contacts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetContact - build select query: %v", ErrBuildQuery, err)
	}

	var contact domain.Contact
	err = executor.QueryRowContext(ctx, query, args...).Scan(&contact.ID, &contact.Name, &contact.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: GetContact - id %d", ErrContactNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetContact - execute select: %v", ErrExecQuery, err)
	}

	return &contact, nil
}

// Countries возвращает список всех стран
func (r *Repository) Countries(ctx context.Context) ([]*domain.Country, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("countries").
		OrderBy("name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Countries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Countries - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var countries []*domain.Country
	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(&country.ID, &country.Name); err != nil {
			return nil, fmt.Errorf("%w: Countries - scan row: %v", ErrScanRow, err)
		}
		countries = append(countries, &country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Countries - iterate rows: %v", ErrExecQuery, err)
	}

	return countries, nil
}

// DivisionsByCountry возвращает регионы первого уровня для выбранной страны
func (r *Repository) DivisionsByCountry(ctx context.Context, countryID int64) ([]*domain.Division, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "country_id").
		From("first_level_divisions").
		Where(squirrel.Eq{"country_id": countryID}).
		OrderBy("name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DivisionsByCountry - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DivisionsByCountry - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var divisions []*domain.Division
	for rows.Next() {
		var division domain.Division
		if err := rows.Scan(&division.ID, &division.Name, &division.CountryID); err != nil {
			return nil, fmt.Errorf("%w: DivisionsByCountry - scan row: %v", ErrScanRow, err)
		}
		divisions = append(divisions, &division)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DivisionsByCountry - iterate rows: %v", ErrExecQuery, err)
	}

	return divisions, nil
}
