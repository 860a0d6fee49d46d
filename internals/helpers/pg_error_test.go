package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapPGError(t *testing.T) {
	code, _ := MapPGError(nil)
	assert.Equal(t, http.StatusOK, code)

	code, msg := MapPGError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_courses_code"}))
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, msg, "uq_courses_code")

	code, _ = MapPGError(&pq.Error{Code: "23503"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = MapPGError(&pgconn.PgError{Code: "57014"})
	assert.Equal(t, http.StatusInternalServerError, code)

	code, _ = MapPGError(errors.New("constraint failed: UNIQUE constraint failed: branches.name (2067)"))
	assert.Equal(t, http.StatusConflict, code)
}

func TestAsConflict(t *testing.T) {
	err := AsConflict(&pq.Error{Code: "23505"}, "taken")
	var fe *fiber.Error
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "taken", fe.Message)

	other := errors.New("boom")
	assert.Same(t, other, AsConflict(other, "taken"))
	assert.NoError(t, AsConflict(nil, "taken"))
}
