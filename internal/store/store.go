// Package store is the PostgreSQL adapter for topics, users, articles and
// comments. Every statement is parameterized; the only identifiers spliced
// into SQL come from the fixed sort column maps below.
//
// Errors are normalized before they leave the package: zero matching rows
// become *NotFoundError, integrity violations become *ConstraintError and
// type errors wrap ErrMalformed. Handlers never inspect Postgres codes.
package store

import (
	"github.com/SergeyParamoshkin/ncnews/internal/database"
	"github.com/SergeyParamoshkin/ncnews/internal/query"
)

// DBTX is the subset of pgx the store needs.
type DBTX = database.DBTX

// Store runs queries against a pool, a transaction or a mock.
type Store struct {
	db DBTX
}

// New creates a Store.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// ListFilter narrows and orders a list query.
type ListFilter struct {
	Sort      string
	Ascending bool
	Limit     int64
	Offset    int64
}

// FilterFromOptions copies parsed query options into a ListFilter.
func FilterFromOptions(opts query.Options) ListFilter {
	return ListFilter{
		Sort:      opts.Sort,
		Ascending: opts.Ascending,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}
}

func (f ListFilter) direction() string {
	if f.Ascending {
		return "ASC"
	}

	return "DESC"
}

// orderExpr resolves a public sort name through columns, falling back to
// the created_at column for names it does not know.
func orderExpr(columns map[string]string, sort string) string {
	if expr, ok := columns[sort]; ok {
		return expr
	}

	return columns[query.DefaultSort]
}
