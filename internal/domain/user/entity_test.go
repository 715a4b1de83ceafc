//go:build unit

package user_test

import (
	"testing"

	"parkhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid email", input: "driver@example.com"},
		{name: "trims surrounding whitespace", input: "  driver@example.com  "},
		{name: "missing at sign", input: "driver.example.com", wantErr: true},
		{name: "missing tld", input: "driver@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "driver@example.com", email.Value())
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", pw.Value())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"driver", "owner", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("owner@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed", user.RoleOwner)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, user.RoleOwner, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
}
