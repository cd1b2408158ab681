package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"garasjelogg/internal/config"
)

func TestStaticVerifierPlainPassword(t *testing.T) {
	v := StaticVerifier{Username: "Admin", Password: "Admin"}

	assert.True(t, v.Verify("Admin", "Admin"))
	assert.False(t, v.Verify("Admin", "wrong"))
	assert.False(t, v.Verify("admin", "Admin"))
	assert.False(t, v.Verify("", ""))
}

func TestStaticVerifierBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	v := StaticVerifier{Username: "Admin", Password: "ignored", PasswordHash: string(hash)}

	assert.True(t, v.Verify("Admin", "hunter2"))
	assert.False(t, v.Verify("Admin", "ignored"))
}

func TestFromSettings(t *testing.T) {
	v := FromSettings(config.Settings{
		AdminUsername: "Boss",
		AdminPassword: "pw",
	})

	assert.True(t, v.Verify("Boss", "pw"))
	assert.False(t, v.Verify("Admin", "pw"))
}
