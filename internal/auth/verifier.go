// Package auth verifies login credentials. The verifier is an interface so
// the static single-credential setup can later be swapped for a real
// identity provider without touching route logic.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"garasjelogg/internal/config"
)

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one identity. When PasswordHash is set it is
// compared with bcrypt; otherwise Password is compared in constant time.
type StaticVerifier struct {
	Username     string
	Password     string
	PasswordHash string
}

func (s StaticVerifier) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) != 1 {
		return false
	}
	if s.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
}

// FromSettings builds the static verifier from application settings.
func FromSettings(s config.Settings) StaticVerifier {
	return StaticVerifier{
		Username:     s.AdminUsername,
		Password:     s.AdminPassword,
		PasswordHash: s.AdminPasswordHash,
	}
}
