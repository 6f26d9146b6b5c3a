// Copyright (c) 2025 HireWire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sqlbuilder turns sparse attribute sets into parameterized SQL
// fragments. Callers never interpolate values into query text; every value
// travels through the positional argument list.
package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when a partial update carries no fields at all.
// An empty update is a caller error, not a silent no-op.
var ErrNoFields = errors.New("no fields to update")

// Field is a single (name, value) pair of a partial update. A slice of
// Fields preserves the order assignments are emitted in, which is what
// keeps placeholder numbering aligned with the argument list.
type Field struct {
	Name  string
	Value interface{}
}

// BuildPartialUpdate compiles an ordered field list into a SET clause and
// the matching positional arguments.
//
// Each field emits `"col"=$N` where N is the 1-based position of the field
// in the slice; args[N-1] is always the value that belongs to $N. translate
// maps source attribute names to stored column names (e.g. numEmployees ->
// num_employees); names missing from the map pass through unchanged.
//
// Values are not validated here. Type and range checks belong to the
// validation layer, which runs before the repository is reached.
func BuildPartialUpdate(fields []Field, translate map[string]string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))

	for i, f := range fields {
		col := f.Name
		if stored, ok := translate[f.Name]; ok {
			col = stored
		}
		assignments = append(assignments, fmt.Sprintf("%q=$%d", col, i+1))
		args = append(args, f.Value)
	}

	return strings.Join(assignments, ", "), args, nil
}
