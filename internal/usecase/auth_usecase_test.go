package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reptileshop/internal/infrastructure/auth"
	"reptileshop/pkg/errors"
)

func newAuthFixture(t *testing.T) (*AuthUseCase, *fakeUserRepo, *fakeNotifier, *auth.JWTManager) {
	t.Helper()

	userRepo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	tokens := auth.NewJWTManager("test-secret", time.Hour, 15*time.Minute)
	uc := NewAuthUseCase(userRepo, tokens, notifier, "http://localhost:3000")
	return uc, userRepo, notifier, tokens
}

func TestSignUpAndSignIn(t *testing.T) {
	uc, _, _, tokens := newAuthFixture(t)

	result, err := uc.SignUp(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.User.IsAdmin)
	assert.Equal(t, defaultAvatar, result.User.Avatar)

	uid, isAdmin, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, uid)
	assert.False(t, isAdmin)

	signedIn, err := uc.SignIn(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, signedIn.User.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	_, err := uc.SignUp(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, err = uc.SignUp(context.Background(), "Other Jane", "jane@example.com", "different")
	assert.True(t, errors.Is(err, "ALREADY_EXISTS"))
}

func TestSignInWrongCredentials(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	_, err := uc.SignUp(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, err = uc.SignIn(context.Background(), "jane@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.SignIn(context.Background(), "nobody@example.com", "secret123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestPasswordResetRoundTrip(t *testing.T) {
	uc, userRepo, notifier, _ := newAuthFixture(t)

	_, err := uc.SignUp(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, uc.ForgetPassword(context.Background(), "jane@example.com"))

	user, err := userRepo.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.ResetToken)

	// The reset link lands in the email.
	assert.Eventually(t, func() bool {
		jobs := notifier.sent()
		return len(jobs) == 1 && strings.Contains(jobs[0].HTML, user.ResetToken)
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, uc.ResetPassword(context.Background(), user.ResetToken, "brand-new-pass"))

	// The token is single-use.
	err = uc.ResetPassword(context.Background(), user.ResetToken, "another-pass")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.SignIn(context.Background(), "jane@example.com", "brand-new-pass")
	assert.NoError(t, err)

	_, err = uc.SignIn(context.Background(), "jane@example.com", "secret123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestResetPasswordInvalidToken(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	err := uc.ResetPassword(context.Background(), "not-a-jwt", "whatever")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
