package common

import (
	"sort"
	"strings"
)

// FieldErrors collects validation failures keyed by input field. At most one
// error is kept per field; the first one reported wins.
type FieldErrors map[string]error

// Add records err for field unless the field already has an error.
func (f FieldErrors) Add(field string, err error) {
	if _, ok := f[field]; ok {
		return
	}
	f[field] = err
}

// Has reports whether field has an error.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Err returns f as an error, or nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, k := range f.fields() {
		parts = append(parts, k+": "+f[k].Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-field errors to errors.Is and errors.As.
func (f FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(f))
	for _, k := range f.fields() {
		errs = append(errs, f[k])
	}
	return errs
}
