package domain

import "time"

// User is a registered account. Records are created at registration and
// never updated or deleted afterwards.
type User struct {
	ID           string
	Username     string // unique, case-sensitive
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
