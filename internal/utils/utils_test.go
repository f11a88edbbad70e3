package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret", "not-a-hash"))
}

func TestJWTRoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("acc-1", "secret", time.Hour, "fieldops")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "fieldops", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, _, err := utils.GenerateJWT("acc-1", "secret", -time.Minute, "fieldops")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
