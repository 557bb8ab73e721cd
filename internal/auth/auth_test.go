package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestGenerateToken(t *testing.T) {
	t.Run("Successfully generate token", func(t *testing.T) {
		token, err := GenerateToken(1, "mariak", RoleMember, "Maria", testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateToken(1, "mariak", RoleMember, "Maria", "")

		assert.Error(t, err)
		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateToken(42, "trainer1", RoleTrainer, "Nikos", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "trainer1", claims.Username)
		assert.Equal(t, RoleTrainer, claims.Role)
		assert.Equal(t, "Nikos", claims.FirstName)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Reject token signed with different secret", func(t *testing.T) {
		token, err := GenerateToken(1, "mariak", RoleMember, "Maria", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, "other-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Reject garbage token", func(t *testing.T) {
		claims, err := ValidateToken("not-a-token", testSecret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		claims, err := ValidateToken("whatever", "")
		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Nil(t, claims)
	})
}
