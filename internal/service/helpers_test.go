package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/journal/internal/entity"
	"github.com/samandr77/microservices/journal/internal/mocks"
	"github.com/samandr77/microservices/journal/internal/service"
	"github.com/samandr77/microservices/journal/pkg/lock"
	"github.com/samandr77/microservices/journal/pkg/metrics"
)

// 09:00 UTC is 11:00 in the journal time zone.
var (
	testNow      = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	testLocation = time.FixedZone("EET", 2*60*60)
	testHeader   = "[ADD][alice][01.01.2024 11:00]"
)

type testDeps struct {
	clients  *mocks.MockClientStore
	vehicles *mocks.MockVehicleStore
	catalog  *mocks.MockCatalogStore
	journal  *mocks.MockJournalStore
}

func newTestService(t *testing.T) (*service.Service, testDeps) {
	t.Helper()

	return newTestServiceWithLocker(t, lock.Nop{})
}

func newTestServiceWithLocker(t *testing.T, locker service.Locker) (*service.Service, testDeps) {
	t.Helper()

	return newTestServiceWith(t, locker, func(*service.Config) {})
}

func newTestServiceWith(t *testing.T, locker service.Locker, tune func(*service.Config)) (*service.Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := testDeps{
		clients:  mocks.NewMockClientStore(ctrl),
		vehicles: mocks.NewMockVehicleStore(ctrl),
		catalog:  mocks.NewMockCatalogStore(ctrl),
		journal:  mocks.NewMockJournalStore(ctrl),
	}

	cfg := service.Config{
		Location:      testLocation,
		PhoneRegion:   "UA",
		MaxCandidates: 50,
		PageSize:      50,
		MaxPageSize:   500,
		Now:           func() time.Time { return testNow },
	}
	tune(&cfg)

	s := service.New(d.clients, d.vehicles, d.catalog, d.journal, locker, metrics.New(prometheus.NewRegistry()), cfg)

	return s, d
}

func userCtx() context.Context {
	return entity.CtxWithUser(context.Background(), entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
	})
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
