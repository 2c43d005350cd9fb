package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError translates Postgres constraint violations (pgx or lib/pq)
// into an HTTP status + message. Anything unrecognized is a 500.
func MapPGError(err error) (int, string) {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23P01":
			return http.StatusConflict, "exclusion constraint violation (overlapping range)"
		case "23503":
			return http.StatusBadRequest, "referenced row not found (FK violation)"
		case "23505":
			return http.StatusConflict, "duplicate data (unique violation)"
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23P01":
			return http.StatusConflict, "exclusion constraint violation (overlapping range)"
		case "23503":
			return http.StatusBadRequest, "referenced row not found (FK violation)"
		case "23505":
			return http.StatusConflict, "duplicate data (unique violation)"
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// IsUniqueViolation reports whether err is a Postgres 23505.
func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
