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

func (r *Repository) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := `SELECT id, name, phone FROM clients WHERE id = $1`

	return scanClient(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) ClientByKey(ctx context.Context, name, phone string) (entity.Client, error) {
	q := `SELECT id, name, phone FROM clients WHERE lower(name) = lower($1) AND phone = $2`

	return scanClient(r.db.QueryRow(ctx, q, name, phone))
}

func (r *Repository) FindClients(ctx context.Context, filter entity.ClientFilter) ([]entity.Client, error) {
	stmt := sq.Select("id", "name", "phone").From("clients").PlaceholderFormat(sq.Dollar)

	if filter.Name != "" {
		stmt = stmt.Where(sq.ILike{"name": likePattern(filter.Name)})
	}

	if filter.Phone != "" {
		stmt = stmt.Where(sq.ILike{"phone": likePattern(filter.Phone)})
	}

	stmt = stmt.OrderBy("name", "id")

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

	var clients []entity.Client

	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *Repository) CreateClient(ctx context.Context, client entity.Client) error {
	q := `INSERT INTO clients (id, name, phone) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, client.ID, client.Name, zeronull.Text(client.Phone))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client %q %q", entity.ErrConflict, client.Name, client.Phone)
		}

		return err
	}

	return nil
}

func scanClient(row pgx.Row) (entity.Client, error) {
	var client entity.Client

	err := row.Scan(&client.ID, &client.Name, (*zeronull.Text)(&client.Phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return client, nil
}
