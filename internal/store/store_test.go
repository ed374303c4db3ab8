package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/config"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

func TestRandomCode(t *testing.T) {
	t.Parallel()

	code := randomCode(16)
	assert.Len(t, code, 16)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}

	// Two draws colliding at 16 base36 characters would indicate a broken
	// generator, not bad luck.
	assert.NotEqual(t, code, randomCode(16))
}

func TestNewInviteCode(t *testing.T) {
	t.Parallel()

	assert.Len(t, NewInviteCode(), 10)
}

func TestNewTaskCode(t *testing.T) {
	t.Parallel()

	code := NewTaskCode()
	assert.True(t, strings.HasPrefix(code, "task-"), code)
	assert.Len(t, code, len("task-")+6)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "teamsync",
		Password: "s3cret",
		DB:       "teamsync",
		SSLMode:  "require",
	})
	assert.Equal(t, "host=db.internal port=5433 user=teamsync password=s3cret dbname=teamsync sslmode=require", dsn)
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com", Password: "Password1!"}
	require.NoError(t, hashPassword(user))

	assert.Empty(t, user.Password)
	require.NotEmpty(t, user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password1!")))

	// A user without a plaintext password keeps the existing hash.
	existing := user.PasswordHash
	require.NoError(t, hashPassword(user))
	assert.Equal(t, existing, user.PasswordHash)
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com", Password: "Password1!"}
	require.NoError(t, hashPassword(user))

	assert.True(t, CheckPassword(user, "Password1!"))
	assert.False(t, CheckPassword(user, "wrong"))
}
