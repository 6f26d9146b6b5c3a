package models

import (
	companies "github.com/hirewire/api/companies/models"
)

// Job represents a job posting as stored and served. Salary and Equity are
// nullable columns; Equity is a fixed-precision decimal carried as a string
// so the stored precision survives the round trip.
type Job struct {
	ID            int64   `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        *int64  `json:"salary" db:"salary"`
	Equity        *string `json:"equity" db:"equity"`
	CompanyHandle string  `json:"companyHandle" db:"company_handle"`
}

// JobWithCompany is the list projection: the job plus the owning company's
// display name from the join.
type JobWithCompany struct {
	Job
	CompanyName string `json:"companyName" db:"company_name"`
}

// JobDetails is the single-job projection: the job plus the owning
// company's public profile. Company is nil when the dependent read finds no
// row; that is absent enrichment, not an error.
type JobDetails struct {
	Job
	Company *companies.Company `json:"company,omitempty"`
}

// JobFilter carries the optional list filters. Title and MinSalary use zero
// values as "filter absent". HasEquity only filters when exactly true; a
// false value never means "equity must be absent".
type JobFilter struct {
	Title     string `schema:"title" json:"title"`
	MinSalary int64  `schema:"minSalary" json:"minSalary"`
	HasEquity bool   `schema:"hasEquity" json:"hasEquity"`
}

// CreateJobRequest is the payload for creating a job posting.
type CreateJobRequest struct {
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// UpdateJobRequest is a sparse partial-update payload. The id and the
// owning company handle are immutable and have no fields here.
type UpdateJobRequest struct {
	Title  *string `json:"title"`
	Salary *int64  `json:"salary"`
	Equity *string `json:"equity"`
}
