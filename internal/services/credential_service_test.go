package services

import (
	"strings"
	"testing"

	"fxledger/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptCredentials(t *testing.T) {
	svc := NewCredentialService(config.PasswordModeBcrypt, bcrypt.MinCost)
	assert.Equal(t, config.PasswordModeBcrypt, svc.Mode())

	hash, err := svc.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, svc.Verify(hash, "correct horse"))
	assert.False(t, svc.Verify(hash, "battery staple"))
	// a plaintext credential never matches under bcrypt
	assert.False(t, svc.Verify("correct horse", "correct horse"))
}

func TestBcryptCredentials_SaltsEachHash(t *testing.T) {
	svc := NewCredentialService(config.PasswordModeBcrypt, bcrypt.MinCost)

	a, err := svc.Hash("pw")
	require.NoError(t, err)
	b, err := svc.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPlaintextCredentials(t *testing.T) {
	svc := NewCredentialService(config.PasswordModePlaintext, 0)
	assert.Equal(t, config.PasswordModePlaintext, svc.Mode())

	stored, err := svc.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, svc.Verify(stored, "pw"))
	assert.False(t, svc.Verify(stored, "PW"))
}

func TestCredentialService_RejectsBadPasswords(t *testing.T) {
	for _, mode := range []string{config.PasswordModeBcrypt, config.PasswordModePlaintext} {
		svc := NewCredentialService(mode, bcrypt.MinCost)

		_, err := svc.Hash("")
		assert.ErrorIs(t, err, ErrPasswordEmpty, mode)

		_, err = svc.Hash(strings.Repeat("x", MaxPasswordLength+1))
		assert.ErrorIs(t, err, ErrPasswordTooLong, mode)
	}
}

func TestNewCredentialService_UnknownModeFallsBackToBcrypt(t *testing.T) {
	svc := NewCredentialService("rot13", 99)
	assert.Equal(t, config.PasswordModeBcrypt, svc.Mode())
}
