package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken(42, "admin", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)

	// JSON numbers come back as float64
	assert.Equal(t, float64(42), claims["account_id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	original := jwtSecret
	t.Cleanup(func() { jwtSecret = original })

	SetJWTSecret("first-secret")
	token, err := GenerateToken(1, "clerk", "CLERK")
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestSetJWTSecretIgnoresEmpty(t *testing.T) {
	original := jwtSecret
	t.Cleanup(func() { jwtSecret = original })

	SetJWTSecret("configured")
	SetJWTSecret("")
	assert.Equal(t, []byte("configured"), jwtSecret)
}
