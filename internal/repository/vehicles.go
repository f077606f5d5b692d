package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func selectVehicles() sq.SelectBuilder {
	return sq.Select(
		"v.id",
		"v.brand",
		"v.model",
		"v.plate_number",
		"v.client_id",
		"c.name",
		"c.phone",
	).From("vehicles v").
		LeftJoin("clients c ON c.id = v.client_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *Repository) VehicleByID(ctx context.Context, id uuid.UUID) (entity.Vehicle, error) {
	sql, args, err := selectVehicles().Where("v.id = ?", id).ToSql()
	if err != nil {
		return entity.Vehicle{}, err
	}

	return scanVehicle(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) VehicleByPlate(ctx context.Context, plate string) (entity.Vehicle, error) {
	sql, args, err := selectVehicles().Where("lower(v.plate_number) = lower(?)", plate).ToSql()
	if err != nil {
		return entity.Vehicle{}, err
	}

	return scanVehicle(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) FindVehicles(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error) {
	stmt := selectVehicles()

	if filter.PlateNumber != "" {
		stmt = stmt.Where(sq.ILike{"v.plate_number": likePattern(filter.PlateNumber)})
	}

	if filter.Brand != "" {
		stmt = stmt.Where(sq.ILike{"v.brand": likePattern(filter.Brand)})
	}

	if filter.Model != "" {
		stmt = stmt.Where(sq.ILike{"v.model": likePattern(filter.Model)})
	}

	if filter.FreeOnly {
		stmt = stmt.Where(sq.Eq{"v.client_id": nil})
	}

	stmt = stmt.OrderBy("v.brand", "v.model", "v.id")

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []entity.Vehicle

	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}

		vehicles = append(vehicles, vehicle)
	}

	return vehicles, rows.Err()
}

func (r *Repository) CreateVehicle(ctx context.Context, vehicle entity.Vehicle) error {
	q := `INSERT INTO vehicles (id, brand, model, plate_number, client_id) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q,
		vehicle.ID,
		vehicle.Brand,
		vehicle.Model,
		vehicle.PlateNumber,
		nullableUUID(vehicle.ClientID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vehicle %q", entity.ErrConflict, vehicle.PlateNumber)
		}

		return err
	}

	return nil
}

func scanVehicle(row pgx.Row) (entity.Vehicle, error) {
	var (
		vehicle  entity.Vehicle
		clientID uuid.UUID
		client   entity.Client
	)

	err := row.Scan(
		&vehicle.ID,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.PlateNumber,
		(*zeronull.UUID)(&clientID),
		(*zeronull.Text)(&client.Name),
		(*zeronull.Text)(&client.Phone),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Vehicle{}, entity.ErrNotFound
		}

		return entity.Vehicle{}, err
	}

	if vehicle.ClientID = uuidPtr(clientID); vehicle.ClientID != nil {
		client.ID = clientID
		vehicle.Client = &client
	}

	return vehicle, nil
}
