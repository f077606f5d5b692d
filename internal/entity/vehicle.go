package entity

import (
	"github.com/gofrs/uuid/v5"
)

// PlatePlaceholder is stored when a vehicle is created without a plate number.
const PlatePlaceholder = "-"

type Vehicle struct {
	ID          uuid.UUID
	Brand       string
	Model       string
	PlateNumber string
	ClientID    *uuid.UUID
	Client      *Client
}

func (v Vehicle) HasPlate() bool {
	return v.PlateNumber != "" && v.PlateNumber != PlatePlaceholder
}

type VehicleInput struct {
	ID          *uuid.UUID
	PlateNumber string `validate:"max=20"`
	Brand       string `validate:"max=100"`
	Model       string `validate:"max=100"`
	ClientID    *uuid.UUID
}

type VehicleFilter struct {
	PlateNumber string
	Brand       string
	Model       string
	FreeOnly    bool
	Limit       uint64
}
