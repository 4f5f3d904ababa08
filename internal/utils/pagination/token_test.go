package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	occurredAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(occurredAt, "4f1c2d1e-9b7a-4c55-8a7e-1a2b3c4d5e6f")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, occurredAt.Equal(decodedAt), "occurredAt should match after decode")
	assert.Equal(t, "4f1c2d1e-9b7a-4c55-8a7e-1a2b3c4d5e6f", decodedID)
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	local := time.Date(2024, 4, 1, 3, 0, 0, 0, loc)

	decodedAt, _, err := DecodeToken(EncodeToken(local, "abc"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "occurred_at parse")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|"))
	_, _, err = DecodeToken(emptyID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}
