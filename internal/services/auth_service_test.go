package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

func TestRegister_And_Login(t *testing.T) {
	f := newFixture(t)

	reg := f.register(t, "alice@example.com", "alice", models.UserRoleDonor)
	assert.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, models.UserRoleDonor, reg.User.Role)

	login, err := f.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com", "alice", models.UserRoleUser)

	_, err := f.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "nope-nope-nope"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthenticated, appErr.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com", "alice", models.UserRoleUser)

	_, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice2",
		Password: "password123",
		FullName: "Other Alice",
		Role:     models.UserRoleUser,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice@example.com", "alice", models.UserRoleUser)

	_, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "alice2@example.com",
		Username: "alice",
		Password: "password123",
		FullName: "Other Alice",
		Role:     models.UserRoleUser,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestDeleteAccount_ThenReactivate(t *testing.T) {
	f := newFixture(t)

	reg := f.register(t, "alice@example.com", "alice", models.UserRoleRecipient)
	request := f.createBloodRequest(t, reg.User.ID)

	require.NoError(t, f.auth.DeleteAccount(reg.User.ID))

	// A deleted account cannot log in and does not resolve.
	_, err := f.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.Error(t, err)
	_, err = f.auth.ResolveIdentity("alice@example.com")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Registering the same email again reactivates the old row instead of
	// creating a new account.
	again, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice-new",
		Password: "password456",
		FullName: "Alice Again",
		Role:     models.UserRoleDonor,
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, again.User.ID)
	assert.Equal(t, "alice-new", again.User.Username)
	assert.Equal(t, models.UserRoleDonor, again.User.Role)

	// History created before the deletion still belongs to the account.
	got, err := f.blood.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, again.User.ID, got.UserID)

	// Old credentials are gone, new ones work.
	_, err = f.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.Error(t, err)
	_, err = f.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password456"})
	require.NoError(t, err)
}

func TestDeleteAccount_ThenReactivateByUsername(t *testing.T) {
	f := newFixture(t)

	reg := f.register(t, "bob@example.com", "shareduser", models.UserRoleDonor)
	require.NoError(t, f.auth.DeleteAccount(reg.User.ID))

	// Registering the tombstoned username under a fresh email reactivates
	// the old row; the soft-deleted row still holds the unique index, so
	// this must not fall through to an insert.
	again, err := f.auth.Register(&dto.RegisterRequest{
		Email:    "bob-new@example.com",
		Username: "shareduser",
		Password: "password456",
		FullName: "Bob Again",
		Role:     models.UserRoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, again.User.ID)
	assert.Equal(t, "bob-new@example.com", again.User.Email)
	assert.Equal(t, models.UserRoleUser, again.User.Role)

	// The old email no longer resolves; the new one logs in.
	_, err = f.auth.Login(&dto.LoginRequest{Email: "bob@example.com", Password: "password456"})
	require.Error(t, err)
	_, err = f.auth.Login(&dto.LoginRequest{Email: "bob-new@example.com", Password: "password456"})
	require.NoError(t, err)
}

func TestUpdateProfile_UsernameConflict(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "alice", models.UserRoleUser)
	f.register(t, "bob@example.com", "bob", models.UserRoleUser)

	taken := "bob"
	_, err := f.auth.UpdateProfile(alice.User.ID, &dto.UpdateProfileRequest{Username: &taken})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)

	name := "Alice B."
	updated, err := f.auth.UpdateProfile(alice.User.ID, &dto.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.FullName)
}
