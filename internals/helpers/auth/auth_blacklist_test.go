package helper_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook_backend/internals/databases/dbtest"
	helperAuth "gradebook_backend/internals/helpers/auth"
)

func TestBlacklist(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, helperAuth.Add(ctx, db, "live-token", "k", now.Add(time.Hour)))
	require.NoError(t, helperAuth.Add(ctx, db, "old-token", "k", now.Add(-time.Hour)))

	ok, err := helperAuth.IsBlacklisted(ctx, db, "live-token", "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = helperAuth.IsBlacklisted(ctx, db, "old-token", "k")
	require.NoError(t, err)
	assert.False(t, ok, "expired rows do not count")

	ok, err = helperAuth.IsBlacklisted(ctx, db, "live-token", "other-key")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := helperAuth.PurgeExpired(ctx, db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(1), dbtest.Count(t, db, "token_blacklist", ""))
}
