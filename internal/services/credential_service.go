package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"fxledger/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the bcrypt input limit
const MaxPasswordLength = 72

var (
	ErrPasswordEmpty   = errors.New("password cannot be empty")
	ErrPasswordTooLong = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
)

// BcryptCredentials stores bcrypt hashes
type BcryptCredentials struct {
	cost int
}

// PlaintextCredentials stores passwords as given. It exists for snapshots
// written by deployments that never hashed credentials.
type PlaintextCredentials struct{}

// NewCredentialService returns the credential scheme selected by mode.
// Unknown modes fall back to bcrypt.
func NewCredentialService(mode string, cost int) CredentialServiceInterface {
	if mode == config.PasswordModePlaintext {
		return PlaintextCredentials{}
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptCredentials{cost: cost}
}

func (b *BcryptCredentials) Mode() string { return config.PasswordModeBcrypt }

// Hash derives a credential from password
func (b *BcryptCredentials) Hash(password string) (string, error) {
	if err := checkPassword(password); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// Verify compares password with a stored hash. A credential that is not a
// bcrypt hash never matches.
func (b *BcryptCredentials) Verify(credential, password string) bool {
	if !strings.HasPrefix(credential, "$2") {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}

func (PlaintextCredentials) Mode() string { return config.PasswordModePlaintext }

func (PlaintextCredentials) Hash(password string) (string, error) {
	if err := checkPassword(password); err != nil {
		return "", err
	}
	return password, nil
}

func (PlaintextCredentials) Verify(credential, password string) bool {
	return subtle.ConstantTimeCompare([]byte(credential), []byte(password)) == 1
}

func checkPassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
