package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of JWT tokens.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewJWTManager(secret string, accessTTL, resetTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

type Claims struct {
	UserID  string `json:"uid"`
	IsAdmin bool   `json:"is_admin"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

const resetPurpose = "password_reset"

func (m *JWTManager) Generate(userID string, isAdmin bool) (string, error) {
	return m.sign(&Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

func (m *JWTManager) GenerateResetToken(userID string) (string, error) {
	return m.sign(&Claims{
		UserID:  userID,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

func (m *JWTManager) sign(claims *Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenStr string) (string, bool, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return "", false, err
	}
	if claims.Purpose != "" {
		return "", false, errors.New("not an access token")
	}
	return claims.UserID, claims.IsAdmin, nil
}

func (m *JWTManager) VerifyResetToken(tokenStr string) (string, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Purpose != resetPurpose {
		return "", errors.New("not a reset token")
	}
	return claims.UserID, nil
}

func (m *JWTManager) parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
