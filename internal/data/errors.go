package data

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapConstraintErr translates Postgres constraint violations into the given
// repository sentinels. Unique violations map to onUnique, foreign key
// violations to onFK; everything else passes through unchanged. Pass nil to
// skip a mapping.
func mapConstraintErr(err error, onUnique, onFK error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case pgerrcode.ForeignKeyViolation:
		if onFK != nil {
			return onFK
		}
	}
	return err
}
