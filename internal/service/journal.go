package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

// CreateRecord registers a visit. Client and vehicle are resolved or created on the way,
// so a service record always ends up with a vehicle.
func (s *Service) CreateRecord(ctx context.Context, in entity.CreateRecordInput) (entity.JournalRecord, error) { //nolint:cyclop,funlen
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("get user from context: %w", err)
	}

	if !in.Department.IsValid() {
		return entity.JournalRecord{}, fmt.Errorf("%w: %q", entity.ErrInvalidDepartment, in.Department)
	}

	isService := in.Department == entity.DepartmentService

	in.Client = normalizeClientInput(in.Client)
	in.Comment = strings.TrimSpace(in.Comment)

	// Sales records carry neither a vehicle nor a primary service.
	if isService {
		in.Vehicle = normalizeVehicleInput(in.Vehicle)
	} else {
		in.Vehicle = entity.VehicleInput{}
		in.ServiceID = nil
	}

	err = validateInput(in)
	if err != nil {
		return entity.JournalRecord{}, err
	}

	var (
		client  *entity.Client
		vehicle *entity.Vehicle
	)

	found, ok, err := s.findClient(ctx, in.Client)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("resolve client: %w", err)
	}

	if ok {
		client = &found
	}

	if isService {
		v, ok, err := s.findVehicle(ctx, in.Vehicle)
		if err != nil {
			return entity.JournalRecord{}, fmt.Errorf("resolve vehicle: %w", err)
		}

		if ok {
			vehicle = &v

			if client == nil && v.Client != nil {
				client = v.Client
			}
		} else {
			err = s.checkVehicleComplete(in.Vehicle)
			if err != nil {
				return entity.JournalRecord{}, err
			}
		}
	}

	// Lookups that can reject the request run before the first insert.
	primary, attached, err := s.ResolveServices(ctx, in.ServiceID, in.ServiceIDs)
	if err != nil {
		return entity.JournalRecord{}, err
	}

	if client == nil && (in.Client.Name != "" || in.Client.Phone != "") {
		created, _, err := s.createClient(ctx, in.Client.Name, in.Client.Phone)
		if err != nil {
			return entity.JournalRecord{}, fmt.Errorf("create client: %w", err)
		}

		client = &created
	}

	if isService && vehicle == nil {
		created, _, err := s.createVehicle(ctx, in.Vehicle, client)
		if err != nil {
			return entity.JournalRecord{}, fmt.Errorf("create vehicle: %w", err)
		}

		vehicle = &created
	}

	record := entity.JournalRecord{
		ID:         uuid.Must(uuid.NewV4()),
		Department: in.Department,
		Phone:      s.phoneSnapshot(in.Client.Phone, client),
		Service:    primary,
		Services:   attached,
	}

	if in.Comment != "" {
		record.Comment = entity.CommentBlock(s.auditHeader(user), in.Comment)
	}

	if client != nil {
		record.ClientID = &client.ID
		record.Client = client
	}

	if vehicle != nil {
		record.VehicleID = &vehicle.ID
		record.Vehicle = vehicle
	}

	if primary != nil {
		record.ServiceID = &primary.ID
	}

	created, err := s.journal.CreateRecord(ctx, record)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("create record: %w", err)
	}

	s.metrics.RecordCreated(in.Department.String())
	slog.InfoContext(ctx, "journal record created",
		"record_id", created.ID.String(),
		"department", in.Department.String(),
	)

	return created, nil
}

// phoneSnapshot prefers the supplied phone, falling back to the client's one.
func (s *Service) phoneSnapshot(raw string, client *entity.Client) string {
	if raw != "" {
		phone, err := normalizePhone(raw, s.cfg.PhoneRegion)
		if err == nil {
			return phone
		}

		if client != nil && client.Phone != "" {
			return client.Phone
		}

		return cleanPhone(raw)
	}

	if client != nil {
		return client.Phone
	}

	return ""
}

// AppendComment adds a new block to the record comment. Existing text is never changed.
func (s *Service) AppendComment(ctx context.Context, id uuid.UUID, text string) (entity.JournalRecord, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("get user from context: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return entity.JournalRecord{}, entity.ErrEmptyComment
	}

	if utf8.RuneCountInString(text) > maxCommentLength {
		return entity.JournalRecord{}, fmt.Errorf("%w: comment is longer than %d characters", entity.ErrInvalidArgument, maxCommentLength)
	}

	record, err := s.journal.AppendComment(ctx, id, entity.CommentBlock(s.auditHeader(user), text))
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("append comment: %w", err)
	}

	s.metrics.CommentAppended()
	slog.InfoContext(ctx, "comment appended", "record_id", id.String())

	return record, nil
}

// TogglePriority flips the priority flag. Concurrent toggles are all applied,
// so the result is the parity of the flips.
func (s *Service) TogglePriority(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error) {
	record, err := s.journal.TogglePriority(ctx, id)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("toggle priority: %w", err)
	}

	slog.InfoContext(ctx, "priority toggled", "record_id", id.String(), "is_priority", record.IsPriority)

	return record, nil
}

func (s *Service) RecordByID(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error) {
	record, err := s.journal.RecordByID(ctx, id)
	if err != nil {
		return entity.JournalRecord{}, fmt.Errorf("record by id: %w", err)
	}

	return record, nil
}

// ListRecords returns a page of the journal. Priority records come first unless
// the order disables it.
func (s *Service) ListRecords(ctx context.Context, filter entity.JournalFilter) ([]entity.JournalRecord, error) {
	if filter.Department != "" && !filter.Department.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidDepartment, filter.Department)
	}

	filter.Search = strings.TrimSpace(filter.Search)

	if filter.Order.Field == "" {
		filter.Order = entity.DefaultOrder()
	}

	if filter.Limit == 0 {
		filter.Limit = s.cfg.PageSize
	}

	if filter.Limit > s.cfg.MaxPageSize {
		filter.Limit = s.cfg.MaxPageSize
	}

	records, err := s.journal.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	slices.SortStableFunc(records, filter.Order.Compare)

	return records, nil
}
