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

func selectRecords() sq.SelectBuilder {
	return sq.Select(
		"j.id",
		"j.created_at",
		"j.department",
		"j.is_priority",
		"j.phone",
		"j.comment",
		"j.client_id",
		"c.name",
		"c.phone",
		"j.vehicle_id",
		"v.brand",
		"v.model",
		"v.plate_number",
		"v.client_id",
		"j.service_id",
		"s.name",
		"s.is_active",
	).From("journal_records j").
		LeftJoin("clients c ON c.id = j.client_id").
		LeftJoin("vehicles v ON v.id = j.vehicle_id").
		LeftJoin("services s ON s.id = j.service_id").
		PlaceholderFormat(sq.Dollar)
}

// CreateRecord stores the record and its service set in one transaction.
// created_at is assigned by the database.
func (r *Repository) CreateRecord(ctx context.Context, record entity.JournalRecord) (entity.JournalRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	q := `INSERT INTO journal_records (id, department, is_priority, client_id, phone, vehicle_id, service_id, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, q,
		record.ID,
		string(record.Department),
		record.IsPriority,
		nullableUUID(record.ClientID),
		zeronull.Text(record.Phone),
		nullableUUID(record.VehicleID),
		nullableUUID(record.ServiceID),
		record.Comment,
	)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("insert record: %w", err)
	}

	if len(record.Services) > 0 {
		stmt := sq.Insert("journal_record_services").
			Columns("journal_id", "service_id").
			Suffix("ON CONFLICT DO NOTHING").
			PlaceholderFormat(sq.Dollar)

		for _, svc := range record.Services {
			stmt = stmt.Values(record.ID.String(), svc.ID.String())
		}

		sql, args, err := stmt.ToSql()
		if err != nil {
			return entity.JournalRecord{}, err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return entity.JournalRecord{}, fmt.Errorf("insert record services: %w", err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("commit tx: %w", err)
	}

	return r.RecordByID(ctx, record.ID)
}

func (r *Repository) RecordByID(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error) {
	sql, args, err := selectRecords().Where("j.id = ?", id).ToSql()
	if err != nil {
		return entity.JournalRecord{}, err
	}

	record, err := scanRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return entity.JournalRecord{}, err
	}

	records := []entity.JournalRecord{record}

	err = r.attachServices(ctx, records)
	if err != nil {
		return entity.JournalRecord{}, err
	}

	return records[0], nil
}

// AppendComment locks the row so concurrent appends are applied one after another.
func (r *Repository) AppendComment(ctx context.Context, id uuid.UUID, block string) (entity.JournalRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var prior string

	err = tx.QueryRow(ctx, `SELECT comment FROM journal_records WHERE id = $1 FOR UPDATE`, id).Scan(&prior)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.JournalRecord{}, entity.ErrNotFound
		}

		return entity.JournalRecord{}, fmt.Errorf("lock record: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE journal_records SET comment = $1 WHERE id = $2`, entity.AppendComment(prior, block), id)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("update comment: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("commit tx: %w", err)
	}

	return r.RecordByID(ctx, id)
}

func (r *Repository) TogglePriority(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error) {
	tag, err := r.db.Exec(ctx, `UPDATE journal_records SET is_priority = NOT is_priority WHERE id = $1`, id)
	if err != nil {
		return entity.JournalRecord{}, err
	}

	if tag.RowsAffected() == 0 {
		return entity.JournalRecord{}, entity.ErrNotFound
	}

	return r.RecordByID(ctx, id)
}

func (r *Repository) ListRecords(ctx context.Context, filter entity.JournalFilter) ([]entity.JournalRecord, error) {
	stmt := selectRecords()

	if filter.Department != "" {
		stmt = stmt.Where(sq.Eq{"j.department": string(filter.Department)})
	}

	if filter.Search != "" {
		p := likePattern(filter.Search)
		stmt = stmt.Where(sq.Or{
			sq.ILike{"c.name": p},
			sq.ILike{"j.phone": p},
			sq.ILike{"j.comment": p},
		})
	}

	stmt = stmt.OrderBy(orderBy(filter.Order)...).Offset(filter.Offset)

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

	records := make([]entity.JournalRecord, 0, filter.Limit)

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	err = r.attachServices(ctx, records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// orderBy mirrors entity.Order.Compare in SQL. Text columns compare byte-wise
// and empty strings sort with NULLs, whatever the database collation is.
func orderBy(o entity.Order) []string {
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}

	var clauses []string

	if o.PriorityFirst {
		clauses = append(clauses, "j.is_priority DESC")
	}

	switch o.Field {
	case entity.SortByClient:
		clauses = append(clauses, `NULLIF(lower(c.name), '') COLLATE "C" `+dir+" NULLS LAST")
	case entity.SortByPhone:
		clauses = append(clauses, `NULLIF(j.phone, '') COLLATE "C" `+dir+" NULLS LAST")
	default:
		clauses = append(clauses, "j.created_at "+dir)
	}

	return append(clauses, "j.id")
}

func (r *Repository) attachServices(ctx context.Context, records []entity.JournalRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	index := make(map[uuid.UUID]int, len(records))

	for i, record := range records {
		ids = append(ids, record.ID)
		index[record.ID] = i
	}

	q := `SELECT js.journal_id, s.id, s.name, s.is_active
		FROM journal_record_services js
		JOIN services s ON s.id = js.service_id
		WHERE js.journal_id = ANY($1::uuid[])
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, q, idStrings(ids))
	if err != nil {
		return fmt.Errorf("select record services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			journalID uuid.UUID
			svc       entity.Service
		)

		err = rows.Scan(&journalID, &svc.ID, &svc.Name, &svc.IsActive)
		if err != nil {
			return err
		}

		i := index[journalID]
		records[i].Services = append(records[i].Services, svc)
	}

	return rows.Err()
}

func scanRecord(row pgx.Row) (entity.JournalRecord, error) {
	var (
		record         entity.JournalRecord
		clientID       uuid.UUID
		client         entity.Client
		vehicleID      uuid.UUID
		vehicleOwnerID uuid.UUID
		vehicle        entity.Vehicle
		serviceID      uuid.UUID
		service        entity.Service
		serviceActive  *bool
	)

	err := row.Scan(
		&record.ID,
		&record.CreatedAt,
		&record.Department,
		&record.IsPriority,
		(*zeronull.Text)(&record.Phone),
		&record.Comment,
		(*zeronull.UUID)(&clientID),
		(*zeronull.Text)(&client.Name),
		(*zeronull.Text)(&client.Phone),
		(*zeronull.UUID)(&vehicleID),
		(*zeronull.Text)(&vehicle.Brand),
		(*zeronull.Text)(&vehicle.Model),
		(*zeronull.Text)(&vehicle.PlateNumber),
		(*zeronull.UUID)(&vehicleOwnerID),
		(*zeronull.UUID)(&serviceID),
		(*zeronull.Text)(&service.Name),
		&serviceActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.JournalRecord{}, entity.ErrNotFound
		}

		return entity.JournalRecord{}, err
	}

	if record.ClientID = uuidPtr(clientID); record.ClientID != nil {
		client.ID = clientID
		record.Client = &client
	}

	if record.VehicleID = uuidPtr(vehicleID); record.VehicleID != nil {
		vehicle.ID = vehicleID
		vehicle.ClientID = uuidPtr(vehicleOwnerID)
		record.Vehicle = &vehicle
	}

	if record.ServiceID = uuidPtr(serviceID); record.ServiceID != nil {
		service.ID = serviceID
		service.IsActive = serviceActive != nil && *serviceActive
		record.Service = &service
	}

	return record, nil
}
