package users

import "time"

// User is a registered account. PasswordHash is a bcrypt digest.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
