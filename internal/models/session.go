package models

import "time"

// Session is the authenticated-user record read from durable local storage
// at startup. Its presence gates the scouting flow; token validity is the
// auth service's problem, not ours.
type Session struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Token    string    `json:"token"`
	StoredAt time.Time `json:"stored_at"`
}
