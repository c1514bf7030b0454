package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "my-secret-password", hash)
	assert.Contains(t, hash, "$2a$10$") // bcrypt, cost 10
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("my-secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
}
