package usecases

import (
	"testing"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	uc := NewAuthUseCase(repositories.NewMemStorage())

	user, err := uc.Register("alice", "a@x.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEqual(t, "s3cret", user.PasswordHash, "password must never be stored as plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestRegisterRequiresAllFields(t *testing.T) {
	uc := NewAuthUseCase(repositories.NewMemStorage())

	_, err := uc.Register("", "a@x.com", "pw")
	assert.Error(t, err)
	_, err = uc.Register("alice", "", "pw")
	assert.Error(t, err)
	_, err = uc.Register("alice", "a@x.com", "")
	assert.Error(t, err)
}

func TestRegisterDuplicateSurfacesConflict(t *testing.T) {
	uc := NewAuthUseCase(repositories.NewMemStorage())

	_, err := uc.Register("alice", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = uc.Register("alice", "other@x.com", "pw")
	var conflict *repositories.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)
}

func TestLogin(t *testing.T) {
	uc := NewAuthUseCase(repositories.NewMemStorage())

	created, err := uc.Register("bob", "b@x.com", "hunter2")
	require.NoError(t, err)

	user, err := uc.Login("bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = uc.Login("bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login("nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user reads the same as a bad password")
}
