package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	token, err := m.Generate("user-1", true)
	require.NoError(t, err)

	uid, isAdmin, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
	assert.True(t, isAdmin)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)
	other := NewJWTManager("different", time.Hour, 15*time.Minute)

	token, err := m.Generate("user-1", false)
	require.NoError(t, err)

	_, _, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 15*time.Minute)

	token, err := m.Generate("user-1", false)
	require.NoError(t, err)

	_, _, err = m.Verify(token)
	assert.Error(t, err)
}

func TestResetTokenIsNotAnAccessToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	reset, err := m.GenerateResetToken("user-1")
	require.NoError(t, err)

	// Token purposes do not cross over.
	_, _, err = m.Verify(reset)
	assert.Error(t, err)

	uid, err := m.VerifyResetToken(reset)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	access, err := m.Generate("user-1", false)
	require.NoError(t, err)
	_, err = m.VerifyResetToken(access)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	_, _, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
