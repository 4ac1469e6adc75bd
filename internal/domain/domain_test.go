package domain_test

import (
	"testing"
	"time"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	birthdate := time.Date(1999, 2, 20, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid user with a fresh ID", func(t *testing.T) {
		user, err := domain.NewUser("Geovanny", "Mendoza", birthdate, "Ta1&tudol3lal54e")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.True(t, user.CreatedAt.IsZero(), "timestamps are stamped by the repository")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := domain.NewUser("", "Mendoza", birthdate, "pw")
		assert.ErrorIs(t, err, domain.ErrEmptyFirstName)

		_, err = domain.NewUser("Geovanny", "", birthdate, "pw")
		assert.ErrorIs(t, err, domain.ErrEmptyLastName)

		_, err = domain.NewUser("Geovanny", "Mendoza", time.Time{}, "pw")
		assert.ErrorIs(t, err, domain.ErrZeroBirthdate)

		_, err = domain.NewUser("Geovanny", "Mendoza", birthdate, "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})
}

func TestNewAccount(t *testing.T) {
	t.Run("creates a valid account without an owner", func(t *testing.T) {
		account, err := domain.NewAccount("My Account", 0, -100, 100)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Nil(t, account.UserID)
	})

	t.Run("rejects a positive dispo", func(t *testing.T) {
		_, err := domain.NewAccount("My Account", 0, 50, 100)
		assert.ErrorIs(t, err, domain.ErrPositiveDispo)
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		_, err := domain.NewAccount("My Account", 0, -100, -1)
		assert.ErrorIs(t, err, domain.ErrNegativeLimit)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := domain.NewAccount("", 0, -100, 100)
		assert.ErrorIs(t, err, domain.ErrEmptyAccountName)
	})
}

func TestNewTransaction(t *testing.T) {
	t.Run("creates a valid transaction", func(t *testing.T) {
		transaction, err := domain.NewTransaction(uuid.New(), uuid.New(), 42.5)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, transaction.ID)
		assert.True(t, transaction.CreatedAt.IsZero(), "creation time is server-assigned")
	})

	t.Run("rejects missing account references", func(t *testing.T) {
		_, err := domain.NewTransaction(uuid.Nil, uuid.New(), 1)
		assert.ErrorIs(t, err, domain.ErrEmptyOriginID)

		_, err = domain.NewTransaction(uuid.New(), uuid.Nil, 1)
		assert.ErrorIs(t, err, domain.ErrEmptyTargetID)
	})
}
