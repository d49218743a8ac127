package domain

import "time"

type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FirstName is the first word of the full name, used in greetings.
func (u User) FirstName() string {
	for i, r := range u.FullName {
		if r == ' ' {
			return u.FullName[:i]
		}
	}
	return u.FullName
}
