package errs

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both missing resources and resources owned by
	// someone else, so callers cannot distinguish the two cases.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when no valid session is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is returned for missing or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a uniqueness guarantee is violated.
	ErrConflict = errors.New("conflict")
)

const uniqueViolationCode = "23505"

// IsDuplicateKey reports whether err is a unique-constraint violation,
// either GORM's translated sentinel or the raw postgres error code.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
