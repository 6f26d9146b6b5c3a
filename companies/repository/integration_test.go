// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/hirewire/api/companies/errors"
	"github.com/hirewire/api/companies/models"
	"github.com/hirewire/api/internal/testutil"
)

// TestPostgresRepository_Integration exercises the repository against a
// real database inside an isolated schema.
func TestPostgresRepository_Integration(t *testing.T) {
	if !testutil.ShouldRunDatabaseTests() {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	client := testutil.NewTestClient(t)
	ctx := context.Background()

	schema := fmt.Sprintf("companies_it_%d", time.Now().UnixNano())
	testutil.ApplySchema(t, client, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema))
	testutil.ApplySchema(t, client, fmt.Sprintf(`SET search_path TO %s`, schema))
	t.Cleanup(func() {
		client.DB().ExecContext(context.Background(), fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`, schema))
	})

	testutil.ApplySchema(t, client, `
		CREATE TABLE companies (
			handle        VARCHAR(25) PRIMARY KEY,
			name          TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			num_employees BIGINT,
			logo_url      TEXT
		);
		CREATE TABLE jobs (
			id             BIGSERIAL PRIMARY KEY,
			salary         BIGINT,
			title          TEXT NOT NULL,
			equity         NUMERIC(4,3),
			company_handle VARCHAR(25) NOT NULL REFERENCES companies (handle) ON DELETE CASCADE
		);
	`)

	repo := NewPostgresRepository(client)

	employees := int64(200)
	created, err := repo.Create(ctx, &models.CreateCompanyRequest{
		Handle:       "acme",
		Name:         "Acme Corp",
		Description:  "anvils and rockets",
		NumEmployees: &employees,
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", created.Handle)

	_, err = repo.Create(ctx, &models.CreateCompanyRequest{Handle: "acme", Name: "Acme Again"})
	assert.ErrorIs(t, err, serrors.ErrCompanyExists)

	found, err := repo.Find(ctx, &models.CompanyFilter{Name: "acm", MinEmployees: 100})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Acme Corp", found[0].Name)

	name := "Acme Corporation"
	updated, err := repo.Update(ctx, "acme", &models.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", updated.Name)
	require.NotNil(t, updated.NumEmployees)
	assert.Equal(t, int64(200), *updated.NumEmployees)

	details, err := repo.GetByHandle(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", details.Name)
	assert.Empty(t, details.Jobs)

	require.NoError(t, repo.Delete(ctx, "acme"))
	err = repo.Delete(ctx, "acme")
	assert.ErrorIs(t, err, serrors.ErrCompanyNotFound)
}
