// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	serrors "github.com/hirewire/api/companies/errors"
	"github.com/hirewire/api/companies/models"
	"github.com/hirewire/api/internal/database/postgres"
	"github.com/hirewire/api/internal/database/sqlbuilder"
)

// companyColumns translates request attribute names to stored column names
// for partial updates.
var companyColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const companyProjection = `handle, name, description, num_employees, logo_url`

// postgresRepository implements CompanyRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
	return &postgresRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new company. The handle is checked for duplicates first
// so callers see a clean conflict error instead of a constraint violation.
func (r *postgresRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	var existing string
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &existing,
		`SELECT handle FROM companies WHERE handle = $1`, req.Handle)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", serrors.ErrCompanyExists, req.Handle)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check company existence: %w", err)
	}

	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyProjection

	var company models.Company
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query,
		req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	if err != nil {
		// Concurrent create can still hit the unique constraint.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrCompanyExists, req.Handle)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &company, nil
}

// Find lists companies matching the filter, ordered by name.
func (r *postgresRepository) Find(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	query := `SELECT ` + companyProjection + ` FROM companies`

	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY name"

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &companies, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	return companies, nil
}

// GetByHandle retrieves a company and, as a dependent read, its jobs.
func (r *postgresRepository) GetByHandle(ctx context.Context, handle string) (*models.CompanyDetails, error) {
	var company models.Company
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &company,
		`SELECT `+companyProjection+` FROM companies WHERE handle = $1`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrCompanyNotFound, handle)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	jobs := []models.CompanyJob{}
	err = sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs,
		`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company jobs: %w", err)
	}

	return &models.CompanyDetails{Company: company, Jobs: jobs}, nil
}

// Update applies a sparse partial update and returns the updated row.
func (r *postgresRepository) Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	setClause, args, err := sqlbuilder.BuildPartialUpdate(collectUpdateFields(req), companyColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING `+companyProjection,
		setClause, len(args)+1)
	args = append(args, handle)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrCompanyNotFound, handle)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &company, nil
}

// Delete removes a company by handle. Zero affected rows means the handle
// never existed.
func (r *postgresRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx,
		`DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", serrors.ErrCompanyNotFound, handle)
	}

	return nil
}

// buildWhere compiles the optional filter into a WHERE clause and the
// matching positional arguments. An empty clause means the caller must omit
// the WHERE keyword entirely. The employee-range check runs before any
// predicate is emitted; no partial clause is ever returned.
func buildWhere(filter *models.CompanyFilter) (string, []interface{}, error) {
	if filter == nil {
		return "", nil, nil
	}

	if filter.MinEmployees > 0 && filter.MaxEmployees > 0 && filter.MinEmployees > filter.MaxEmployees {
		return "", nil, serrors.ErrInvalidEmployeeRange
	}

	var clauses []string
	var args []interface{}
	argIndex := 1

	if filter.Name != "" {
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Name+"%")
		argIndex++
	}

	if filter.MinEmployees != 0 {
		clauses = append(clauses, fmt.Sprintf("num_employees >= $%d", argIndex))
		args = append(args, filter.MinEmployees)
		argIndex++
	}

	if filter.MaxEmployees != 0 {
		clauses = append(clauses, fmt.Sprintf("num_employees <= $%d", argIndex))
		args = append(args, filter.MaxEmployees)
		argIndex++
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}

	return strings.Join(clauses, " AND "), args, nil
}

// collectUpdateFields flattens the sparse request into ordered (name, value)
// pairs. The declaration order here pins the column order of the generated
// statement.
func collectUpdateFields(req *models.UpdateCompanyRequest) []sqlbuilder.Field {
	var fields []sqlbuilder.Field
	if req == nil {
		return fields
	}
	if req.Name != nil {
		fields = append(fields, sqlbuilder.Field{Name: "name", Value: *req.Name})
	}
	if req.Description != nil {
		fields = append(fields, sqlbuilder.Field{Name: "description", Value: *req.Description})
	}
	if req.NumEmployees != nil {
		fields = append(fields, sqlbuilder.Field{Name: "numEmployees", Value: *req.NumEmployees})
	}
	if req.LogoURL != nil {
		fields = append(fields, sqlbuilder.Field{Name: "logoUrl", Value: *req.LogoURL})
	}
	return fields
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
