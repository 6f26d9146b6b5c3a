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

	companiesModels "github.com/hirewire/api/companies/models"
	"github.com/hirewire/api/internal/database/postgres"
	"github.com/hirewire/api/internal/database/sqlbuilder"
	serrors "github.com/hirewire/api/jobs/errors"
	"github.com/hirewire/api/jobs/models"
)

const jobProjection = `id, title, salary, equity, company_handle`

// postgresRepository implements JobRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for job postings
func NewPostgresRepository(client *postgres.Client) JobRepository {
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

// Create inserts a new job posting. The id is store-generated, so a single
// INSERT ... RETURNING carries the whole operation.
func (r *postgresRepository) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobProjection

	var job models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query,
		req.Title, req.Salary, req.Equity, req.CompanyHandle)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrUnknownCompany, req.CompanyHandle)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return &job, nil
}

// Find lists jobs matching the filter, joined with the owning company for
// its display name, ordered by title.
func (r *postgresRepository) Find(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error) {
	query := `
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		FROM jobs j
		JOIN companies c ON c.handle = j.company_handle`

	where, args := buildWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY j.title"

	jobs := []models.JobWithCompany{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	return jobs, nil
}

// GetByID retrieves a job and, as a dependent read, the owning company's
// public profile. The two reads are not atomic with each other; a company
// deleted in between simply leaves the enrichment absent.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.JobDetails, error) {
	var job models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job,
		`SELECT `+jobProjection+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", serrors.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	details := &models.JobDetails{Job: job}

	var company companiesModels.Company
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &company,
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`,
		job.CompanyHandle)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get job company: %w", err)
		}
	} else {
		details.Company = &company
	}

	return details, nil
}

// Update applies a sparse partial update and returns the updated row.
func (r *postgresRepository) Update(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	setClause, args, err := sqlbuilder.BuildPartialUpdate(collectUpdateFields(req), nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING `+jobProjection,
		setClause, len(args)+1)
	args = append(args, id)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", serrors.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &job, nil
}

// Delete removes a job posting by id. Zero affected rows means the id never
// existed.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %d", serrors.ErrJobNotFound, id)
	}

	return nil
}

// buildWhere compiles the optional filter into a WHERE clause and aligned
// positional arguments. The equity-presence predicate takes no parameter
// and is only emitted when HasEquity is exactly true; false means the
// filter is absent, never "equity must be absent".
func buildWhere(filter *models.JobFilter) (string, []interface{}) {
	if filter == nil {
		return "", nil
	}

	var clauses []string
	var args []interface{}
	argIndex := 1

	if filter.Title != "" {
		clauses = append(clauses, fmt.Sprintf("j.title ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Title+"%")
		argIndex++
	}

	if filter.MinSalary != 0 {
		clauses = append(clauses, fmt.Sprintf("j.salary >= $%d", argIndex))
		args = append(args, filter.MinSalary)
		argIndex++
	}

	if filter.HasEquity {
		clauses = append(clauses, "j.equity IS NOT NULL AND j.equity > 0")
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return strings.Join(clauses, " AND "), args
}

// collectUpdateFields flattens the sparse request into ordered (name, value)
// pairs; the declaration order here pins the generated column order. Job
// column names match the request attribute names, so no translation map is
// needed.
func collectUpdateFields(req *models.UpdateJobRequest) []sqlbuilder.Field {
	var fields []sqlbuilder.Field
	if req == nil {
		return fields
	}
	if req.Title != nil {
		fields = append(fields, sqlbuilder.Field{Name: "title", Value: *req.Title})
	}
	if req.Salary != nil {
		fields = append(fields, sqlbuilder.Field{Name: "salary", Value: *req.Salary})
	}
	if req.Equity != nil {
		fields = append(fields, sqlbuilder.Field{Name: "equity", Value: *req.Equity})
	}
	return fields
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
