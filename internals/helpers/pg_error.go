package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// --- PG error mapping (pgx/libpq) ---
func MapPGError(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapPGCode(pgxErr.Code, pgxErr.ConstraintName)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapPGCode(string(pqErr.Code), pqErr.Constraint)
	}
	if IsUniqueViolation(err) {
		return http.StatusConflict, "duplicate data (unique violation)"
	}
	return http.StatusInternalServerError, "internal server error"
}

func mapPGCode(code, constraint string) (int, string) {
	switch code {
	case pgUniqueViolation:
		if constraint != "" {
			return http.StatusConflict, "duplicate data (unique violation: " + constraint + ")"
		}
		return http.StatusConflict, "duplicate data (unique violation)"
	case pgForeignKeyViolation:
		return http.StatusConflict, "record is still referenced (foreign key violation)"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Deteksi unique violation tanpa peduli driver: pgx, lib/pq, atau sqlite
// ("UNIQUE constraint failed").
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// AsConflict turns a unique violation into a 409 with the given message and
// passes every other error through untouched.
func AsConflict(err error, message string) error {
	if IsUniqueViolation(err) {
		return fiber.NewError(fiber.StatusConflict, message)
	}
	return err
}
