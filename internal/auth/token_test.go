package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	err := InitJWT("test-secret-key", 7*24)
	assert.NoError(t, err)
}

func TestInitJWT_EmptySecret(t *testing.T) {
	assert.Error(t, InitJWT("", 1))
}

func TestGenerateAndParseToken(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateToken("user-123", "jobseeker")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "jobseeker", claims.Role)
	// Срок жизни - 7 дней от выпуска
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_Expired(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateTokenWithTTL("user-123", "recruiter", -time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	initTestJWT(t)

	_, err := ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongKey(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateToken("user-123", "jobseeker")
	assert.NoError(t, err)

	// Ротация ключа делает все выпущенные токены невалидными
	err = InitJWT("another-secret-key", 7*24)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
