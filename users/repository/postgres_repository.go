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

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirewire/api/internal/database/postgres"
	"github.com/hirewire/api/internal/database/sqlbuilder"
	serrors "github.com/hirewire/api/users/errors"
	"github.com/hirewire/api/users/models"
)

// userColumns translates request attribute names to stored column names
// for partial updates.
var userColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

const userProjection = `username, first_name, last_name, email, is_admin`

// postgresRepository implements UserRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for user profiles
func NewPostgresRepository(client *postgres.Client) UserRepository {
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

// Create inserts a new user profile.
func (r *postgresRepository) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userProjection

	var user models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query,
		req.Username, req.FirstName, req.LastName, req.Email, req.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrUserExists, req.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// List returns all user profiles ordered by username.
func (r *postgresRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &users,
		`SELECT `+userProjection+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetByUsername retrieves a single user profile.
func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user,
		`SELECT `+userProjection+` FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Update applies a sparse partial update and returns the updated row.
func (r *postgresRepository) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	setClause, args, err := sqlbuilder.BuildPartialUpdate(collectUpdateFields(req), userColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING `+userProjection,
		setClause, len(args)+1)
	args = append(args, username)

	var user models.User
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// Delete removes a user profile. Zero affected rows means the username
// never existed.
func (r *postgresRepository) Delete(ctx context.Context, username string) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", serrors.ErrUserNotFound, username)
	}

	return nil
}

// collectUpdateFields flattens the sparse request into ordered (name, value)
// pairs; the declaration order here pins the generated column order.
func collectUpdateFields(req *models.UpdateUserRequest) []sqlbuilder.Field {
	var fields []sqlbuilder.Field
	if req == nil {
		return fields
	}
	if req.FirstName != nil {
		fields = append(fields, sqlbuilder.Field{Name: "firstName", Value: *req.FirstName})
	}
	if req.LastName != nil {
		fields = append(fields, sqlbuilder.Field{Name: "lastName", Value: *req.LastName})
	}
	if req.Email != nil {
		fields = append(fields, sqlbuilder.Field{Name: "email", Value: *req.Email})
	}
	if req.IsAdmin != nil {
		fields = append(fields, sqlbuilder.Field{Name: "isAdmin", Value: *req.IsAdmin})
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
