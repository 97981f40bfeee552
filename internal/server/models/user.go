// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a portal account. PasswordHash and Salt hold the argon2id
// credential material; DisplayName is what listings show as the creator.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash []byte    `json:"-"`
	Salt         []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RefreshToken is a server-stored, rotating refresh token.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
