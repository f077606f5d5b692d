package entity

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// Actor is the name written into audit headers.
func (u User) Actor() string {
	if u.Username != "" {
		return u.Username
	}

	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}

	return u.ID.String()
}
