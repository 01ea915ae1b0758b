package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hashed)

	assert.True(t, VerifyPassword("hunter2hunter2", hashed))
	assert.False(t, VerifyPassword("wrong password", hashed))
}

func TestHashPasswordDiffersPerCall(t *testing.T) {
	h1, err := HashPassword("same input")
	assert.NoError(t, err)
	h2, err := HashPassword("same input")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2, "bcrypt salts should differ")
}
