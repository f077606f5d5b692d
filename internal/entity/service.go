package entity

import (
	"github.com/gofrs/uuid/v5"
)

// Service is an item of the work catalogue.
type Service struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}
