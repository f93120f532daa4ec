package sql

import (
	"errors"

	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pqUniqueViolationErrCode = "23505" // PostgreSQL unique violation error code. See https://www.postgresql.org/docs/14/errcodes-appendix.html
)

// convertError maps driver errors of both pgx and lib/pq onto repository errors.
func convertError(err error) error {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pqUniqueViolationErrCode {
		return &repository.UniqueConstraintError{Detail: pgError.Detail}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolationErrCode {
		return &repository.UniqueConstraintError{Detail: pqErr.Detail}
	}
	return err
}
