package model

import "time"

// User is an account record. PasswordHash is a bcrypt hash and is never
// serialized into responses.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
