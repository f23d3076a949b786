package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reptileshop/internal/domain/entity"
	"reptileshop/pkg/errors"
)

func seedUserFixtures(t *testing.T) (*UserUseCase, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		ID:      "root-admin",
		Name:    "Root",
		Email:   "root@reptileshop.dev",
		IsAdmin: true,
	}))
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		ID:    "user-1",
		Name:  "Jane",
		Email: "jane@example.com",
	}))

	return NewUserUseCase(userRepo, "root@reptileshop.dev"), userRepo
}

func TestDeleteProtectedAdminRefused(t *testing.T) {
	uc, userRepo := seedUserFixtures(t)

	err := uc.DeleteUser(context.Background(), "root-admin")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// The account is still there.
	_, err = userRepo.GetByID(context.Background(), "root-admin")
	assert.NoError(t, err)

	// Everyone else can be deleted.
	require.NoError(t, uc.DeleteUser(context.Background(), "user-1"))
	_, err = userRepo.GetByID(context.Background(), "user-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateUserTogglesAdmin(t *testing.T) {
	uc, _ := seedUserFixtures(t)

	user, err := uc.UpdateUser(context.Background(), "user-1", AdminUpdateUserInput{IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "Jane", user.Name)

	user, err = uc.UpdateUser(context.Background(), "user-1", AdminUpdateUserInput{IsAdmin: false})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	uc, userRepo := seedUserFixtures(t)

	user, err := uc.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{Name: "Janet"})
	require.NoError(t, err)
	assert.Equal(t, "Janet", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = uc.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{Password: "new-secret"})
	require.NoError(t, err)

	stored, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-secret")))
}

func TestUpdateProfileRejectsDuplicateEmail(t *testing.T) {
	uc, userRepo := seedUserFixtures(t)

	_, err := uc.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{Email: "root@reptileshop.dev"})
	assert.True(t, errors.Is(err, "ALREADY_EXISTS"))

	// Neither account moved.
	stored, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", stored.Email)
	admin, err := userRepo.GetByID(context.Background(), "root-admin")
	require.NoError(t, err)
	assert.Equal(t, "root@reptileshop.dev", admin.Email)

	// Resubmitting your own current email is not a collision.
	user, err := uc.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUpdateUserRejectsDuplicateEmail(t *testing.T) {
	uc, userRepo := seedUserFixtures(t)

	_, err := uc.UpdateUser(context.Background(), "user-1", AdminUpdateUserInput{Email: "root@reptileshop.dev"})
	assert.True(t, errors.Is(err, "ALREADY_EXISTS"))

	stored, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", stored.Email)

	user, err := uc.UpdateUser(context.Background(), "user-1", AdminUpdateUserInput{Email: "jane.doe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", user.Email)
}

func TestListUsers(t *testing.T) {
	uc, _ := seedUserFixtures(t)

	users, total, err := uc.ListUsers(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}
