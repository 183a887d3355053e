// Package models declares the wire-level data snapshots returned by the
// taskboard backend. Field names follow the backend's snake_case JSON; the
// structs are treated as immutable snapshots and replaced wholesale rather
// than mutated in place.
package models

import "strings"

// User is the authenticated user's profile as reported by the backend.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// FullName returns "First Last", falling back to the username when both
// name fields are empty.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
