package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrIncompleteEntity  = errors.New("incomplete entity")
	ErrAmbiguousMatch    = errors.New("ambiguous match")
	ErrInvalidDepartment = errors.New("invalid department")
	ErrEmptyComment      = errors.New("empty comment")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
)

// AmbiguousMatchError is returned when a soft search finds more than one candidate.
// Exactly one of Clients and Vehicles is set, according to Entity.
// Truncated reports that more candidates matched than were returned.
type AmbiguousMatchError struct {
	Entity    Kind
	Clients   []Client
	Vehicles  []Vehicle
	Truncated bool
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%s: %d %s candidates", ErrAmbiguousMatch, e.Candidates(), e.Entity)
}

func (e *AmbiguousMatchError) Unwrap() error {
	return ErrAmbiguousMatch
}

func (e *AmbiguousMatchError) Candidates() int {
	if e.Entity == KindVehicle {
		return len(e.Vehicles)
	}

	return len(e.Clients)
}

// IncompleteEntityError is returned when an entity has to be created
// but the input lacks the fields required for it.
type IncompleteEntityError struct {
	Entity  Kind
	Missing []string
}

func (e *IncompleteEntityError) Error() string {
	return fmt.Sprintf("%s: %s requires %s", ErrIncompleteEntity, e.Entity, strings.Join(e.Missing, ", "))
}

func (e *IncompleteEntityError) Unwrap() error {
	return ErrIncompleteEntity
}

type Kind string

const (
	KindClient  Kind = "client"
	KindVehicle Kind = "vehicle"
)
