package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func (r *Repository) ServiceByID(ctx context.Context, id uuid.UUID) (entity.Service, error) {
	q := `SELECT id, name, is_active FROM services WHERE id = $1`

	var svc entity.Service

	err := r.db.QueryRow(ctx, q, id).Scan(&svc.ID, &svc.Name, &svc.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Service{}, entity.ErrNotFound
		}

		return entity.Service{}, err
	}

	return svc, nil
}

func (r *Repository) ActiveServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	q := `SELECT id, name, is_active FROM services WHERE is_active AND id = ANY($1::uuid[]) ORDER BY name`

	return r.queryServices(ctx, q, idStrings(ids))
}

func (r *Repository) ActiveServices(ctx context.Context) ([]entity.Service, error) {
	q := `SELECT id, name, is_active FROM services WHERE is_active ORDER BY name`

	return r.queryServices(ctx, q)
}

// CreateService adds a catalogue item. The catalogue itself is maintained outside the journal.
func (r *Repository) CreateService(ctx context.Context, svc entity.Service) error {
	q := `INSERT INTO services (id, name, is_active) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, svc.ID, svc.Name, svc.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: service %q", entity.ErrConflict, svc.Name)
		}

		return err
	}

	return nil
}

func (r *Repository) queryServices(ctx context.Context, q string, args ...any) ([]entity.Service, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []entity.Service

	for rows.Next() {
		var svc entity.Service

		err = rows.Scan(&svc.ID, &svc.Name, &svc.IsActive)
		if err != nil {
			return nil, err
		}

		services = append(services, svc)
	}

	return services, rows.Err()
}
