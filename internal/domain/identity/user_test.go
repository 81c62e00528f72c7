package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Success(t *testing.T) {
	user, err := NewUser("Alice", "Alice@Example.com", "s3cretpass")

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	assert.True(t, user.CheckPassword("s3cretpass"))
	assert.False(t, user.CheckPassword("wrongpass1"))
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@example.com", "s3cretpass"},
		{"empty email", "Alice", "", "s3cretpass"},
		{"malformed email", "Alice", "not-an-email", "s3cretpass"},
		{"short password", "Alice", "a@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.userName, tt.email, tt.password)
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin("Root", "root@example.com", "adminpass123")

	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	oldVersion := user.GetVersion()

	err = user.ChangePassword("newpassword")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("newpassword"))
	assert.False(t, user.CheckPassword("s3cretpass"))
	assert.Equal(t, oldVersion+1, user.GetVersion())

	err = user.ChangePassword("short")
	assert.Error(t, err)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
}
