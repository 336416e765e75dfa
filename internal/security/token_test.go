package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestGenerateAndValidate(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate(7, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "stayhaven", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Generate(7, "alice@example.com")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("another-secret-entirely-0123456789abc", time.Hour)

	token, err := other.Generate(7, "alice@example.com")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
