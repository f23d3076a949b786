package entity

import (
	"time"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Avatar       string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	ResetToken   string `json:"-" firestore:"resetToken,omitempty"`
	IsAdmin      bool   `json:"is_admin" firestore:"isAdmin"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
