package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secreta123!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash should carry the configured cost")

	require.NoError(t, VerifyPassword("Secreta123!", hash))
	require.ErrorIs(t, VerifyPassword("otra-clave", hash), ErrPasswordMismatch)
}

func TestHashPasswordSalts(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("misma-clave")
	require.NoError(t, err)
	b, err := HashPassword("misma-clave")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("whatever", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrPasswordMismatch)
}
