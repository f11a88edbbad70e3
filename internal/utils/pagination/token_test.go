package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	timestamp := time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, timestamp)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decodedDate, decodedTimestamp, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, date, decodedDate)
	assert.Equal(t, timestamp, decodedTimestamp)

	now := time.Now().UTC()
	decodedDate, decodedTimestamp, err = DecodeToken(EncodeToken(now, now))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedDate))
	assert.True(t, now.Equal(decodedTimestamp))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.ErrorContains(t, err, "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|2024-03-15T14:30:45Z"))
	_, _, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "date parse")

	badTimestamp := base64.URLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z|later"))
	_, _, err = DecodeToken(badTimestamp)
	assert.ErrorContains(t, err, "timestamp parse")
}
