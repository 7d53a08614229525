package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewUserService(NewUserRepository(store))
}

func TestRegister_SequentialIDs(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Register("Ada", "Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := svc.Register("Grace", "Hopper", "grace@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Register("Ada", "Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Ada", "Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("Other", "Person", "ada@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name, lastName, email, password string
	}{
		{"", "Lovelace", "ada@example.com", "secret123"},
		{"Ada", "", "ada@example.com", "secret123"},
		{"Ada", "Lovelace", "", "secret123"},
		{"Ada", "Lovelace", "ada@example.com", ""},
	}
	for _, c := range cases {
		_, err := svc.Register(c.name, c.lastName, c.email, c.password)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestRegister_InvalidEmailFormat(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Ada", "Lovelace", "not-an-email", "secret123")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetUserByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Register("Ada", "Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	found, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, "Lovelace", found.LastName)
}
