package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/utils"
)

type UserUseCase struct {
	userRepo       repository.UserRepository
	protectedEmail string
}

// NewUserUseCase takes the protected admin email: the account that can never
// be deleted, regardless of caller privilege.
func NewUserUseCase(userRepo repository.UserRepository, protectedEmail string) *UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		protectedEmail: protectedEmail,
	}
}

type UpdateProfileInput struct {
	Name     string
	Email    string
	Avatar   string
	Password string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		if err := uc.checkEmailAvailable(ctx, input.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Internal("Failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Admin operations

// checkEmailAvailable reports an AlreadyExists error when another account
// already owns the email. Firestore has no unique index, so uniqueness is
// enforced here the same way SignUp does it.
func (uc *UserUseCase) checkEmailAvailable(ctx context.Context, email, selfID string) error {
	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil && existing.ID != selfID {
		return errors.AlreadyExists("An account with this email already exists")
	}
	return nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.userRepo.List(ctx, pagination.PageSize, pagination.Offset)
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

type AdminUpdateUserInput struct {
	Name    string
	Email   string
	Avatar  string
	IsAdmin bool
}

func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, input AdminUpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		if err := uc.checkEmailAvailable(ctx, input.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	user.IsAdmin = input.IsAdmin
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser hard-deletes an account. The protected admin account is refused
// for every caller.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if uc.protectedEmail != "" && user.Email == uc.protectedEmail {
		return errors.Forbidden("Cannot delete the protected admin account", nil)
	}

	return uc.userRepo.Delete(ctx, id)
}
