package models

// Company represents a company record as stored and served.
// NumEmployees and LogoURL are nullable columns.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int64  `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CompanyJob is a job row as embedded in a single-company response.
type CompanyJob struct {
	ID     int64   `json:"id" db:"id"`
	Title  string  `json:"title" db:"title"`
	Salary *int64  `json:"salary" db:"salary"`
	Equity *string `json:"equity" db:"equity"`
}

// CompanyDetails is the single-company projection: the company plus the
// jobs it owns. Jobs is always non-nil, possibly empty.
type CompanyDetails struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// CompanyFilter carries the optional list filters. Zero values mean
// "filter absent": an empty Name and zero employee bounds contribute no
// predicates.
type CompanyFilter struct {
	Name         string `schema:"name" json:"name"`
	MinEmployees int64  `schema:"minEmployees" json:"minEmployees"`
	MaxEmployees int64  `schema:"maxEmployees" json:"maxEmployees"`
}

// CreateCompanyRequest is the payload for creating a company. Handle and
// Name are required; the rest is optional.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// UpdateCompanyRequest is a sparse partial-update payload. nil pointers are
// untouched fields; a request with every field nil is rejected. The handle
// is immutable and deliberately has no field here.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}
