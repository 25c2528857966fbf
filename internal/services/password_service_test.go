package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	ps := NewPasswordService(4) // minimum cost keeps the test fast

	hash, err := ps.HashPassword("securepass")
	require.NoError(t, err)
	assert.NotEqual(t, "securepass", hash)

	assert.True(t, ps.ComparePassword("securepass", hash))
	assert.False(t, ps.ComparePassword("wrongpass", hash))
}

func TestPasswordService_ValidatePassword(t *testing.T) {
	ps := NewPasswordService(4)

	assert.ErrorIs(t, ps.ValidatePassword(""), ErrPasswordEmpty)
	assert.ErrorIs(t, ps.ValidatePassword("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, ps.ValidatePassword(strings.Repeat("a", 73)), ErrPasswordTooLong)
	assert.NoError(t, ps.ValidatePassword("longenough"))
}

func TestPasswordService_HashRejectsInvalid(t *testing.T) {
	ps := NewPasswordService(4)

	_, err := ps.HashPassword("short")
	assert.Error(t, err)
}
