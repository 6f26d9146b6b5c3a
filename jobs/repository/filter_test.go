package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/api/internal/database/sqlbuilder"
	"github.com/hirewire/api/jobs/models"
)

func TestBuildWhere_EmptyFilter(t *testing.T) {
	where, args := buildWhere(&models.JobFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	where, args = buildWhere(nil)
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuildWhere_FalseHasEquityMeansAbsent(t *testing.T) {
	// {hasEquity: false} compiles to the same thing as {}.
	where, args := buildWhere(&models.JobFilter{HasEquity: false})
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuildWhere_HasEquityTrue(t *testing.T) {
	where, args := buildWhere(&models.JobFilter{HasEquity: true})
	assert.Equal(t, "j.equity IS NOT NULL AND j.equity > 0", where)
	assert.Nil(t, args)
}

func TestBuildWhere_AllPredicates(t *testing.T) {
	where, args := buildWhere(&models.JobFilter{
		Title:     "engineer",
		MinSalary: 100000,
		HasEquity: true,
	})
	assert.Equal(t, "j.title ILIKE $1 AND j.salary >= $2 AND j.equity IS NOT NULL AND j.equity > 0", where)
	assert.Equal(t, []interface{}{"%engineer%", int64(100000)}, args)
}

func TestBuildWhere_MinSalaryOnly(t *testing.T) {
	where, args := buildWhere(&models.JobFilter{MinSalary: 50000})
	assert.Equal(t, "j.salary >= $1", where)
	assert.Equal(t, []interface{}{int64(50000)}, args)
}

func TestCollectUpdateFields_Order(t *testing.T) {
	title := "new"
	salary := int64(120000)

	fields := collectUpdateFields(&models.UpdateJobRequest{Title: &title, Salary: &salary})
	require.Len(t, fields, 2)

	clause, args, err := sqlbuilder.BuildPartialUpdate(fields, nil)
	require.NoError(t, err)
	assert.Equal(t, `"title"=$1, "salary"=$2`, clause)
	assert.Equal(t, []interface{}{title, salary}, args)
}

func TestCollectUpdateFields_Empty(t *testing.T) {
	assert.Empty(t, collectUpdateFields(&models.UpdateJobRequest{}))
	assert.Empty(t, collectUpdateFields(nil))
}
