// Package models defines client-side data models shared by the gateway,
// the credential store and the screens.
package models

import "github.com/dmitrijs2005/crammer/internal/common"

// User is the identity record returned by the backend. The client never
// edits it; a re-fetch replaces it wholesale. Timestamps are kept exactly as
// the backend formats them.
type User struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// FirstName is the first word of FullName, used in greetings.
func (u *User) FirstName() string {
	return common.FirstWord(u.FullName)
}

// AuthPayload is the data part of a successful signup or login response.
type AuthPayload struct {
	User  User      `json:"user"`
	Token TokenData `json:"token"`
}
