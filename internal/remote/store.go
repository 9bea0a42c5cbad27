// Package remote is the narrow client surface over the hosted table store.
package remote

import (
	"context"
	"fmt"
	"net/http"
)

// Row is one record as returned by the store, keyed by column name
type Row map[string]any

// Op is a filter operator
type Op string

const (
	OpEq      Op = "eq"
	OpIsNull  Op = "is.null"
	OpNotNull Op = "not.is.null"
)

type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Eq matches rows whose column equals value
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

// NotNull matches rows whose column has a value
func NotNull(column string) Filter {
	return Filter{Column: column, Op: OpNotNull}
}

// IsNull matches rows whose column is null
func IsNull(column string) Filter {
	return Filter{Column: column, Op: OpIsNull}
}

type Order struct {
	Column     string
	Descending bool
}

// Query describes a select. Empty Columns selects every column; a zero Limit
// means no limit.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	OrderBy []Order
	Limit   int
}

// Store is the remote table store. Implementations must be safe for
// concurrent use.
type Store interface {
	Select(ctx context.Context, q Query) ([]Row, error)
	Count(ctx context.Context, table string, filters []Filter) (int, error)
	// Ping runs a minimal select against table to prove the endpoint and
	// credentials work.
	Ping(ctx context.Context, table string) error
	Close()
}

// Error is a failure reported by the store itself, as opposed to a
// transport failure.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("remote store returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return "remote store error"
}
