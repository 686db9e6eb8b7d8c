package store

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors. Everything the store returns for a classified failure
// wraps one of these; anything else is an unclassified store error.
var (
	ErrNotFound   = errors.New("not found")
	ErrForeignKey = errors.New("foreign key violation")
	ErrUnique     = errors.New("unique violation")
	ErrMalformed  = errors.New("malformed input")
)

// Postgres SQLSTATE codes the store normalizes.
const (
	codeForeignKeyViolation   = "23503"
	codeUniqueViolation       = "23505"
	codeInvalidTextRepr       = "22P02"
	codeInvalidDatetimeFormat = "22007"
	codeDatetimeOverflow      = "22008"
	codeNumericOutOfRange     = "22003"
	codeInvalidRowCountLimit  = "2201W"
	codeInvalidRowCountOffset = "2201X"
	codeUndefinedColumn       = "42703"
)

// NotFoundError names the resource that matched zero rows.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}

	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConstraintError is a normalized integrity violation. Column is the
// referencing column for foreign keys, when Postgres reports it.
type ConstraintError struct {
	Kind       error // ErrForeignKey or ErrUnique
	Table      string
	Column     string
	Constraint string
	cause      error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v on %s (%s): %v", e.Kind, e.Table, e.Constraint, e.cause)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.cause}
}

// keyDetail matches `Key (topic)=(unknown) is not present in table "topics".`
var keyDetail = regexp.MustCompile(`^Key \(([^)]+)\)=`)

// normalize maps Postgres errors onto the sentinels above. Errors that are
// not Postgres errors, or carry an unknown code, are returned as they are.
func normalize(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeForeignKeyViolation, codeUniqueViolation:
		kind := ErrForeignKey
		if pgErr.Code == codeUniqueViolation {
			kind = ErrUnique
		}

		column := pgErr.ColumnName
		if m := keyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
			column = m[1]
		}

		return &ConstraintError{
			Kind:       kind,
			Table:      pgErr.TableName,
			Column:     column,
			Constraint: pgErr.ConstraintName,
			cause:      err,
		}
	case codeInvalidTextRepr, codeInvalidDatetimeFormat, codeDatetimeOverflow, codeNumericOutOfRange,
		codeInvalidRowCountLimit, codeInvalidRowCountOffset, codeUndefinedColumn:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return err
}
