package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUserValidation(t *testing.T) {
	base := UserConfig{ID: uuid.New(), PlainPassword: "correct-horse-battery-staple"}

	t.Run("rejects short usernames", func(t *testing.T) {
		cfg := base
		cfg.Username = "ab"
		_, err := NewUser(cfg)
		assert.ErrorIs(t, err, ErrUsernameTooShort)
	})

	t.Run("rejects long usernames", func(t *testing.T) {
		cfg := base
		cfg.Username = "abcdefghijklmnopqrstu"
		_, err := NewUser(cfg)
		assert.ErrorIs(t, err, ErrUsernameTooLong)
	})

	t.Run("rejects usernames with special characters", func(t *testing.T) {
		cfg := base
		cfg.Username = "maze walker!"
		_, err := NewUser(cfg)
		assert.ErrorIs(t, err, ErrInvalidUsernameFormat)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		cfg := base
		cfg.Username = "walker"
		cfg.PlainPassword = "password"
		_, err := NewUser(cfg)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestVerifyPassword(t *testing.T) {
	// A low-cost hash keeps the test fast; the production path uses a
	// higher cost in hashPassword.
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery-staple"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &User{ID: uuid.New(), Username: "walker", PasswordHash: string(hash)}
	assert.True(t, user.VerifyPassword("correct-horse-battery-staple"))
	assert.False(t, user.VerifyPassword("wrong-password"))
}
