package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/logger"
	"reptileshop/pkg/mailer"
)

const defaultAvatar = "/images/default1.jpg"

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenManager
	notifier Notifier
	baseURL  string
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenManager, notifier Notifier, baseURL string) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// AuthResult is the signed-in identity returned to the client.
type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) SignUp(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.AlreadyExists("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       defaultAvatar,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	token, err := uc.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// ForgetPassword stores a reset token on the account and emails the reset
// link. The email is best-effort.
func (uc *AuthUseCase) ForgetPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := uc.tokens.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Internal("Failed to generate reset token", err)
	}

	user.ResetToken = token
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if uc.notifier != nil {
		link := fmt.Sprintf("%s/reset-password/%s", uc.baseURL, token)
		job := mailer.ResetPasswordEmail(user, link)
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := uc.notifier.Send(sendCtx, job); err != nil {
				logger.Error("Failed to send reset password email to %s: %v", user.Email, err)
			}
		}()
	}

	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if _, err := uc.tokens.VerifyResetToken(token); err != nil {
		return errors.Unauthorized("Invalid token", err)
	}

	user, err := uc.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	user.ResetToken = ""

	return uc.userRepo.Update(ctx, user)
}
