//go:build unit

package queries_test

import (
	"testing"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 8, 1, 10, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	decodedTime, decodedID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, ts.UnixMicro(), decodedTime.UnixMicro())
	assert.Equal(t, id, decodedID)
}

func TestDecodeAfterCursor(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"wrong version", "djI6MTIzLWFiYw=="},
		{"missing separator", "djE6MTIz"},
		{"bad uuid", "djE6MTIzLW5vdC1hLXV1aWQ="},
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
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
