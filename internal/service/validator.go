package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/ttacon/libphonenumber"

	"github.com/samandr77/microservices/journal/internal/entity"
)

const maxCommentLength = 10000

var validate = validator.New()

func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Namespace()+" "+fe.Tag()+"="+fe.Param())
	}

	return fmt.Errorf("%w: %s", entity.ErrInvalidArgument, strings.Join(fields, ", "))
}

func normalizeClientInput(in entity.ClientInput) entity.ClientInput {
	in.ID = nilIfEmpty(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)

	return in
}

func normalizeVehicleInput(in entity.VehicleInput) entity.VehicleInput {
	in.ID = nilIfEmpty(in.ID)
	in.ClientID = nilIfEmpty(in.ClientID)
	in.PlateNumber = strings.TrimSpace(in.PlateNumber)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)

	return in
}

func nilIfEmpty(id *uuid.UUID) *uuid.UUID {
	if id == nil || id.IsNil() {
		return nil
	}

	return id
}

// normalizePhone returns the number in E.164 or ErrInvalidPhone.
func normalizePhone(raw, region string) (string, error) {
	num, err := libphonenumber.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", entity.ErrInvalidPhone, raw, err)
	}

	if !libphonenumber.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidPhone, raw)
	}

	return libphonenumber.Format(num, libphonenumber.E164), nil
}

// cleanPhone strips formatting so that partial numbers can be used as a search substring.
func cleanPhone(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}

		return r
	}, raw)
}

func missingFields(fields ...string) []string {
	var missing []string

	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			missing = append(missing, fields[i])
		}
	}

	return missing
}
