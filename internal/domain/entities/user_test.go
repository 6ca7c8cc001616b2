package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docledger/internal/common"
)

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name      string
		user      *User
		wantField string
	}{
		{
			name: "valid",
			user: NewUser("Alice", "Stone", "alice", "pw1", 1),
		},
		{
			name:      "empty name",
			user:      NewUser("", "Stone", "alice", "pw1", 1),
			wantField: "name",
		},
		{
			name:      "whitespace only name",
			user:      NewUser("   ", "Stone", "alice", "pw1", 1),
			wantField: "name",
		},
		{
			name:      "empty lastname",
			user:      NewUser("Alice", "", "alice", "pw1", 1),
			wantField: "lastname",
		},
		{
			name:      "empty username",
			user:      NewUser("Alice", "Stone", "", "pw1", 1),
			wantField: "username",
		},
		{
			name:      "whitespace only username",
			user:      NewUser("Alice", "Stone", "\t ", "pw1", 1),
			wantField: "username",
		},
		{
			name:      "empty password",
			user:      NewUser("Alice", "Stone", "alice", "", 1),
			wantField: "password",
		},
		{
			name:      "missing category",
			user:      NewUser("Alice", "Stone", "alice", "pw1", 0),
			wantField: "category_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := NewValidatedUser(tt.user)
			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, validated)
				return
			}
			require.Error(t, err)
			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestUserPasswordHashing(t *testing.T) {
	user := NewUser("Alice", "Stone", "alice", "s3cret", 1)
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "s3cret", user.Password, "plaintext must not survive hashing")
	assert.NoError(t, user.CheckPassword("s3cret"))
	assert.Error(t, user.CheckPassword("  s3cret  "), "candidate must match byte for byte")
	assert.Error(t, user.CheckPassword("wrong"))
	assert.Error(t, user.CheckPassword(""))
}

func TestUserPasswordWhitespaceSignificant(t *testing.T) {
	user := NewUser("Alice", "Stone", "alice", "s3cret ", 1)
	require.NoError(t, user.HashPassword())

	assert.NoError(t, user.CheckPassword("s3cret "), "trailing space is part of the password")
	assert.Error(t, user.CheckPassword("s3cret"))
}
