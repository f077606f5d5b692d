package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
	"github.com/samandr77/microservices/journal/pkg/lock"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type ClientStore interface {
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	// ClientByKey looks a client up by the dedup key: case-insensitive name and exact phone.
	ClientByKey(ctx context.Context, name, phone string) (entity.Client, error)
	FindClients(ctx context.Context, filter entity.ClientFilter) ([]entity.Client, error)
	CreateClient(ctx context.Context, client entity.Client) error
}

type VehicleStore interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (entity.Vehicle, error)
	VehicleByPlate(ctx context.Context, plate string) (entity.Vehicle, error)
	FindVehicles(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle entity.Vehicle) error
}

type CatalogStore interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (entity.Service, error)
	ActiveServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)
	ActiveServices(ctx context.Context) ([]entity.Service, error)
}

type JournalStore interface {
	CreateRecord(ctx context.Context, record entity.JournalRecord) (entity.JournalRecord, error)
	RecordByID(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error)
	// AppendComment appends block to the record comment atomically.
	AppendComment(ctx context.Context, id uuid.UUID, block string) (entity.JournalRecord, error)
	TogglePriority(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error)
	ListRecords(ctx context.Context, filter entity.JournalFilter) ([]entity.JournalRecord, error)
}

type Locker interface {
	Obtain(ctx context.Context, key string) (lock.Release, error)
}

type Metrics interface {
	EntityResolved(kind, outcome string)
	RecordCreated(department string)
	CommentAppended()
}

type Config struct {
	Location      *time.Location
	PhoneRegion   string
	MaxCandidates uint64
	PageSize      uint64
	MaxPageSize   uint64
	Now           func() time.Time
}

type Service struct {
	clients  ClientStore
	vehicles VehicleStore
	catalog  CatalogStore
	journal  JournalStore
	locker   Locker
	metrics  Metrics
	cfg      Config
}

func New(
	clients ClientStore,
	vehicles VehicleStore,
	catalog CatalogStore,
	journal JournalStore,
	locker Locker,
	metrics Metrics,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	if cfg.PhoneRegion == "" {
		cfg.PhoneRegion = "UA"
	}

	if cfg.MaxCandidates == 0 {
		cfg.MaxCandidates = 50
	}

	// A single candidate would make every ambiguous search look unique.
	if cfg.MaxCandidates < minCandidates {
		cfg.MaxCandidates = minCandidates
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = 50
	}

	if cfg.MaxPageSize < cfg.PageSize {
		cfg.MaxPageSize = cfg.PageSize
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		clients:  clients,
		vehicles: vehicles,
		catalog:  catalog,
		journal:  journal,
		locker:   locker,
		metrics:  metrics,
		cfg:      cfg,
	}
}

const minCandidates = 2

const (
	outcomeReused     = "reused"
	outcomeCreated    = "created"
	outcomeAmbiguous  = "ambiguous"
	outcomeIncomplete = "incomplete"
)

func (s *Service) auditHeader(user entity.User) string {
	return entity.AuditHeader(user.Actor(), s.cfg.Now().In(s.cfg.Location))
}

// obtainLock degrades to running unlocked: the unique indexes still reject duplicates.
func (s *Service) obtainLock(ctx context.Context, key string) lock.Release {
	release, err := s.locker.Obtain(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "proceeding without lock", "key", key, "error", err)
	}

	if release == nil {
		return func() {}
	}

	return release
}
