package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

func TestUserService_SignupAndAuthenticate(t *testing.T) {
	db := utils.SetupTestDB(t, "bakholokoe_test_users", usersCollection)
	svc := NewUserService(db)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Jane", "jane@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, models.EmailKey("jane@example.com"), user.EmailKey)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	// Correct password succeeds
	authed, err := svc.Authenticate(ctx, "jane@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Jane", authed.Name)

	// Wrong password fails with ErrInvalidCredentials
	_, err = svc.Authenticate(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email fails the same way
	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_SignupDuplicate(t *testing.T) {
	db := utils.SetupTestDB(t, "bakholokoe_test_users_dup", usersCollection)
	svc := NewUserService(db)
	ctx := context.Background()

	first, err := svc.Signup(ctx, "Jane", "jane@example.com", "pw-one")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Impostor", "jane@example.com", "pw-two")
	assert.ErrorIs(t, err, ErrUserExists)

	// Identity store retains the first record only
	stored, err := svc.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
}

func TestUserService_FindByEmail_NotFound(t *testing.T) {
	db := utils.SetupTestDB(t, "bakholokoe_test_users_missing", usersCollection)
	svc := NewUserService(db)

	_, err := svc.FindByEmail(context.Background(), "ghost@example.com")
	assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
}

func TestEmailKey_Normalization(t *testing.T) {
	assert.Equal(t, "jane_doe@x_com", models.EmailKey("jane.doe@x.com"))
	// Documented collision: '.' and '_' map to the same key
	assert.Equal(t, models.EmailKey("a_b@x.com"), models.EmailKey("a.b@x.com"))
}
