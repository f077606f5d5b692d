package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

// ResolveClient returns an existing client matching the input or creates a new one.
// The boolean result reports whether the client was created.
func (s *Service) ResolveClient(ctx context.Context, in entity.ClientInput) (entity.Client, bool, error) {
	in = normalizeClientInput(in)

	err := validateInput(in)
	if err != nil {
		return entity.Client{}, false, err
	}

	client, found, err := s.findClient(ctx, in)
	if err != nil {
		return entity.Client{}, false, err
	}

	if found {
		return client, false, nil
	}

	return s.createClient(ctx, in.Name, in.Phone)
}

// findClient tries the id first, then a substring search over name and phone.
// A missing id is not an error.
func (s *Service) findClient(ctx context.Context, in entity.ClientInput) (entity.Client, bool, error) {
	if in.ID != nil {
		client, err := s.clients.ClientByID(ctx, *in.ID)
		if err == nil {
			s.metrics.EntityResolved(string(entity.KindClient), outcomeReused)
			return client, true, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Client{}, false, fmt.Errorf("client by id: %w", err)
		}

		slog.DebugContext(ctx, "client id not found, falling back to search", "client_id", in.ID.String())
	}

	if in.Name == "" && in.Phone == "" {
		return entity.Client{}, false, nil
	}

	candidates, err := s.clients.FindClients(ctx, entity.ClientFilter{
		Name:  in.Name,
		Phone: cleanPhone(in.Phone),
		Limit: s.cfg.MaxCandidates + 1,
	})
	if err != nil {
		return entity.Client{}, false, fmt.Errorf("find clients: %w", err)
	}

	switch len(candidates) {
	case 0:
		return entity.Client{}, false, nil
	case 1:
		s.metrics.EntityResolved(string(entity.KindClient), outcomeReused)
		return candidates[0], true, nil
	}

	s.metrics.EntityResolved(string(entity.KindClient), outcomeAmbiguous)

	candidates, truncated := capCandidates(candidates, s.cfg.MaxCandidates)

	return entity.Client{}, false, &entity.AmbiguousMatchError{
		Entity:    entity.KindClient,
		Clients:   candidates,
		Truncated: truncated,
	}
}

func (s *Service) createClient(ctx context.Context, name, phone string) (entity.Client, bool, error) {
	if missing := missingFields("name", name, "phone", phone); len(missing) > 0 {
		s.metrics.EntityResolved(string(entity.KindClient), outcomeIncomplete)
		return entity.Client{}, false, &entity.IncompleteEntityError{Entity: entity.KindClient, Missing: missing}
	}

	phone, err := normalizePhone(phone, s.cfg.PhoneRegion)
	if err != nil {
		return entity.Client{}, false, err
	}

	release := s.obtainLock(ctx, "client:"+strings.ToLower(name)+":"+phone)
	defer release()

	existing, err := s.clients.ClientByKey(ctx, name, phone)
	if err == nil {
		s.metrics.EntityResolved(string(entity.KindClient), outcomeReused)
		return existing, false, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Client{}, false, fmt.Errorf("client by key: %w", err)
	}

	client := entity.Client{
		ID:    uuid.Must(uuid.NewV4()),
		Name:  name,
		Phone: phone,
	}

	err = s.clients.CreateClient(ctx, client)
	if errors.Is(err, entity.ErrConflict) {
		existing, err = s.clients.ClientByKey(ctx, name, phone)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Client{}, false, fmt.Errorf("%w: client %q", entity.ErrConflict, name)
		}

		if err != nil {
			return entity.Client{}, false, fmt.Errorf("client by key after conflict: %w", err)
		}

		s.metrics.EntityResolved(string(entity.KindClient), outcomeReused)

		return existing, false, nil
	}

	if err != nil {
		return entity.Client{}, false, fmt.Errorf("create client: %w", err)
	}

	s.metrics.EntityResolved(string(entity.KindClient), outcomeCreated)
	slog.InfoContext(ctx, "client created", "client_id", client.ID.String())

	return client, true, nil
}

// ResolveVehicle returns an existing vehicle matching the input or creates a new one.
// The boolean result reports whether the vehicle was created.
func (s *Service) ResolveVehicle(ctx context.Context, in entity.VehicleInput) (entity.Vehicle, bool, error) {
	in = normalizeVehicleInput(in)

	err := validateInput(in)
	if err != nil {
		return entity.Vehicle{}, false, err
	}

	vehicle, found, err := s.findVehicle(ctx, in)
	if err != nil {
		return entity.Vehicle{}, false, err
	}

	if found {
		return vehicle, false, nil
	}

	var owner *entity.Client

	if in.ClientID != nil {
		client, err := s.clients.ClientByID(ctx, *in.ClientID)
		if err != nil {
			return entity.Vehicle{}, false, fmt.Errorf("vehicle owner: %w", err)
		}

		owner = &client
	}

	return s.createVehicle(ctx, in, owner)
}

// findVehicle tries the id first, then a substring search over the plate number.
func (s *Service) findVehicle(ctx context.Context, in entity.VehicleInput) (entity.Vehicle, bool, error) {
	if in.ID != nil {
		vehicle, err := s.vehicles.VehicleByID(ctx, *in.ID)
		if err == nil {
			s.metrics.EntityResolved(string(entity.KindVehicle), outcomeReused)
			return vehicle, true, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Vehicle{}, false, fmt.Errorf("vehicle by id: %w", err)
		}

		slog.DebugContext(ctx, "vehicle id not found, falling back to search", "vehicle_id", in.ID.String())
	}

	if in.PlateNumber == "" || in.PlateNumber == entity.PlatePlaceholder {
		return entity.Vehicle{}, false, nil
	}

	candidates, err := s.vehicles.FindVehicles(ctx, entity.VehicleFilter{
		PlateNumber: in.PlateNumber,
		Limit:       s.cfg.MaxCandidates + 1,
	})
	if err != nil {
		return entity.Vehicle{}, false, fmt.Errorf("find vehicles: %w", err)
	}

	switch len(candidates) {
	case 0:
		return entity.Vehicle{}, false, nil
	case 1:
		vehicle := candidates[0]

		if mismatch(in.Brand, vehicle.Brand) || mismatch(in.Model, vehicle.Model) {
			slog.WarnContext(ctx, "vehicle matched by plate differs from input",
				"vehicle_id", vehicle.ID.String(),
				"plate_number", vehicle.PlateNumber,
				"brand", in.Brand,
				"model", in.Model,
			)
		}

		s.metrics.EntityResolved(string(entity.KindVehicle), outcomeReused)

		return vehicle, true, nil
	}

	s.metrics.EntityResolved(string(entity.KindVehicle), outcomeAmbiguous)

	candidates, truncated := capCandidates(candidates, s.cfg.MaxCandidates)

	return entity.Vehicle{}, false, &entity.AmbiguousMatchError{
		Entity:    entity.KindVehicle,
		Vehicles:  candidates,
		Truncated: truncated,
	}
}

// capCandidates trims a search that was asked for one row more than the limit.
func capCandidates[T any](candidates []T, limit uint64) ([]T, bool) {
	if uint64(len(candidates)) <= limit {
		return candidates, false
	}

	return candidates[:limit], true
}

func mismatch(input, stored string) bool {
	return input != "" && !strings.EqualFold(input, stored)
}

func (s *Service) checkVehicleComplete(in entity.VehicleInput) error {
	if missing := missingFields("brand", in.Brand, "model", in.Model); len(missing) > 0 {
		s.metrics.EntityResolved(string(entity.KindVehicle), outcomeIncomplete)
		return &entity.IncompleteEntityError{Entity: entity.KindVehicle, Missing: missing}
	}

	return nil
}

func (s *Service) createVehicle(ctx context.Context, in entity.VehicleInput, owner *entity.Client) (entity.Vehicle, bool, error) {
	err := s.checkVehicleComplete(in)
	if err != nil {
		return entity.Vehicle{}, false, err
	}

	vehicle := entity.Vehicle{
		ID:          uuid.Must(uuid.NewV4()),
		Brand:       in.Brand,
		Model:       in.Model,
		PlateNumber: in.PlateNumber,
	}

	if vehicle.PlateNumber == "" {
		vehicle.PlateNumber = entity.PlatePlaceholder
	}

	if owner != nil {
		vehicle.ClientID = &owner.ID
		vehicle.Client = owner
	}

	if !vehicle.HasPlate() {
		err = s.vehicles.CreateVehicle(ctx, vehicle)
		if err != nil {
			return entity.Vehicle{}, false, fmt.Errorf("create vehicle: %w", err)
		}

		s.vehicleCreated(ctx, vehicle)

		return vehicle, true, nil
	}

	release := s.obtainLock(ctx, "vehicle:"+strings.ToLower(vehicle.PlateNumber))
	defer release()

	existing, err := s.vehicles.VehicleByPlate(ctx, vehicle.PlateNumber)
	if err == nil {
		s.metrics.EntityResolved(string(entity.KindVehicle), outcomeReused)
		return existing, false, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Vehicle{}, false, fmt.Errorf("vehicle by plate: %w", err)
	}

	err = s.vehicles.CreateVehicle(ctx, vehicle)
	if errors.Is(err, entity.ErrConflict) {
		existing, err = s.vehicles.VehicleByPlate(ctx, vehicle.PlateNumber)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vehicle{}, false, fmt.Errorf("%w: vehicle %q", entity.ErrConflict, vehicle.PlateNumber)
		}

		if err != nil {
			return entity.Vehicle{}, false, fmt.Errorf("vehicle by plate after conflict: %w", err)
		}

		s.metrics.EntityResolved(string(entity.KindVehicle), outcomeReused)

		return existing, false, nil
	}

	if err != nil {
		return entity.Vehicle{}, false, fmt.Errorf("create vehicle: %w", err)
	}

	s.vehicleCreated(ctx, vehicle)

	return vehicle, true, nil
}

func (s *Service) vehicleCreated(ctx context.Context, vehicle entity.Vehicle) {
	s.metrics.EntityResolved(string(entity.KindVehicle), outcomeCreated)
	slog.InfoContext(ctx, "vehicle created", "vehicle_id", vehicle.ID.String(), "plate_number", vehicle.PlateNumber)
}

// FreeVehicles lists vehicles that have no owner.
func (s *Service) FreeVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	vehicles, err := s.vehicles.FindVehicles(ctx, entity.VehicleFilter{FreeOnly: true, Limit: s.cfg.MaxPageSize})
	if err != nil {
		return nil, fmt.Errorf("find free vehicles: %w", err)
	}

	return vehicles, nil
}

func (s *Service) SearchVehicles(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error) {
	filter.PlateNumber = strings.TrimSpace(filter.PlateNumber)
	filter.Brand = strings.TrimSpace(filter.Brand)
	filter.Model = strings.TrimSpace(filter.Model)

	if filter.PlateNumber == "" && filter.Brand == "" && filter.Model == "" {
		return nil, fmt.Errorf("%w: plate number, brand or model is required", entity.ErrInvalidArgument)
	}

	if filter.Limit == 0 || filter.Limit > s.cfg.MaxCandidates {
		filter.Limit = s.cfg.MaxCandidates
	}

	vehicles, err := s.vehicles.FindVehicles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}

	return vehicles, nil
}
