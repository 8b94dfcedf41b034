//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"expertbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== TestCursor =====

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 9, 7, 12, 30, 45, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	// Precision is capped at microseconds to match the storage column.
	assert.True(t, gotTime.Equal(ts))
}

func TestDecodeAfterCursor(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "!!!"},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
