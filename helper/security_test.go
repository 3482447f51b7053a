package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.Split(hashed, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "scrypt", parts[0])
	assert.Len(t, parts[1], 32) // 16 salt bytes hex encoded
	assert.Len(t, parts[2], 128)
	assert.False(t, IsLegacyPlaintext(hashed))
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, VerifyPassword("secret123", hashed))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, VerifyPassword("secret124", hashed))
	})

	t.Run("empty stored", func(t *testing.T) {
		assert.False(t, VerifyPassword("anything", ""))
	})

	t.Run("legacy plaintext", func(t *testing.T) {
		assert.True(t, IsLegacyPlaintext("admin123"))
		assert.True(t, VerifyPassword("admin123", "admin123"))
		assert.False(t, VerifyPassword("admin124", "admin123"))
	})

	t.Run("malformed records", func(t *testing.T) {
		for _, stored := range []string{
			"scrypt$onlysalt",
			"scrypt$$",
			"scrypt$abcd$zz-not-hex",
			"scrypt$abcd$" + strings.Repeat("ab", 8), // truncated key
		} {
			assert.False(t, VerifyPassword("secret123", stored), "stored %q", stored)
		}
	})
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

// A legacy row verifies against the raw password, and the rehash produced
// for it verifies the same password afterwards.
func TestLegacyMigrationProperty(t *testing.T) {
	stored := "kasir123"
	require.True(t, IsLegacyPlaintext(stored))
	require.True(t, VerifyPassword("kasir123", stored))

	rehashed, err := HashPassword("kasir123")
	require.NoError(t, err)
	assert.False(t, IsLegacyPlaintext(rehashed))
	assert.True(t, VerifyPassword("kasir123", rehashed))
}
