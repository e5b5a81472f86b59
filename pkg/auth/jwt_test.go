package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	token, err := verifier.GenerateToken("user-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestVerifyTokenExpired(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	token, err := verifier.GenerateToken("user-1", time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewJWTVerifier("secret-a")
	verifier := NewJWTVerifier("secret-b")

	token, err := issuer.GenerateToken("user-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.VerifyToken("not-a-token")
	assert.Error(t, err)
}
