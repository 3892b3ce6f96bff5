package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserRejectsDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddUser(ctx, "ana", "x1"))

	err := s.AddUser(ctx, "ana", "another")
	require.ErrorIs(t, err, ErrAlreadyExists)

	// The original password must survive the rejected insert.
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)
	assert.Equal(t, "x1", users[0].Password)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddUser(ctx, "ana", "x1"))

	tests := []struct {
		name     string
		username string
		password string
		want     string
		wantErr  error
	}{
		{name: "valid credentials", username: "ana", password: "x1", want: "ana"},
		{name: "wrong password", username: "ana", password: "wrong", wantErr: ErrNotFound},
		{name: "unknown user", username: "bob", password: "x1", wantErr: ErrNotFound},
		{name: "username is case sensitive", username: "Ana", password: "x1", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResetUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddUser(ctx, "ana", "x1"))
	require.NoError(t, s.AddUser(ctx, "bob", "y2"))

	require.NoError(t, s.ResetUsers(ctx))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// Resetting an already empty table still succeeds.
	require.NoError(t, s.ResetUsers(ctx))
}
