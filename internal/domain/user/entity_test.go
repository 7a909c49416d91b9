//go:build unit

package user_test

import (
	"testing"

	"itemshare/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name        string
		userName    string
		email       string
		errIs       error
		wantName    string
		wantEmail   string
	}{
		{name: "valid user", userName: "alice", email: "alice@example.com", wantName: "alice", wantEmail: "alice@example.com"},
		{name: "name and email are trimmed", userName: " alice ", email: " alice@example.com ", wantName: "alice", wantEmail: "alice@example.com"},
		{name: "empty name", userName: "", email: "alice@example.com", errIs: user.ErrEmptyName},
		{name: "empty email", userName: "alice", email: "", errIs: user.ErrInvalidEmail},
		{name: "email without at sign", userName: "alice", email: "alice.example.com", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := user.New(tc.userName, tc.email)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, u.Name())
			assert.Equal(t, tc.wantEmail, u.Email())
		})
	}
}

func TestPatch(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.New("alice", "alice@example.com")
		require.NoError(t, err)
		return u
	}

	t.Run("nil fields keep current values", func(t *testing.T) {
		u := newUser(t)
		require.NoError(t, u.Patch(nil, nil))
		assert.Equal(t, "alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("single field update", func(t *testing.T) {
		u := newUser(t)
		name := "alicia"
		require.NoError(t, u.Patch(&name, nil))
		assert.Equal(t, "alicia", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("invalid email leaves user unchanged", func(t *testing.T) {
		u := newUser(t)
		bad := "not-an-email"
		assert.ErrorIs(t, u.Patch(nil, &bad), user.ErrInvalidEmail)
		assert.Equal(t, "alice@example.com", u.Email())
	})
}
