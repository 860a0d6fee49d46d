package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemester(t *testing.T) {
	for raw, want := range map[string]int{"0": 0, "1": 1, " 8 ": 8} {
		got, err := parseSemester(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "-1", "two", "1.5"} {
		_, err := parseSemester(raw)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe, raw)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "semester must be a non-negative integer", fe.Message)
	}
}
