package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, query string) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, DefaultOpts)
		return nil
	})
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+query, nil))
	require.NoError(t, err)
	return got
}

func TestParseFiber(t *testing.T) {
	assert.Equal(t, Params{Page: 1, All: true}, parse(t, ""))
	assert.Equal(t, Params{Page: 2, PerPage: 25}, parse(t, "?page=2"))
	assert.Equal(t, Params{Page: 1, PerPage: 10}, parse(t, "?page=0&per_page=10"))
	assert.Equal(t, Params{Page: 3, PerPage: 5}, parse(t, "?page=3&limit=5"))
	assert.Equal(t, Params{Page: 1, PerPage: 200}, parse(t, "?page=1&per_page=5000"))
}

func TestBuildMeta(t *testing.T) {
	assert.Nil(t, BuildMeta(10, Params{All: true}))

	m := BuildMeta(51, Params{Page: 2, PerPage: 25})
	require.NotNil(t, m)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)

	p := Params{Page: 3, PerPage: 10}
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 20, p.Offset())
}
