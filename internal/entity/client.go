package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Client struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// ClientInput identifies a client by id or by name and phone.
// Empty fields are treated as absent.
type ClientInput struct {
	ID    *uuid.UUID
	Name  string `validate:"max=255"`
	Phone string `validate:"max=32"`
}

// ClientFilter is a substring, case-insensitive, AND-combined search.
type ClientFilter struct {
	Name  string
	Phone string
	Limit uint64
}
