package repository_test

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/entity"
	"github.com/samandr77/microservices/journal/internal/repository"
	"github.com/samandr77/microservices/journal/pkg/config"
	"github.com/samandr77/microservices/journal/pkg/postgres"
)

func TestRepository_CreateClient_Conflict(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	client := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: uniqueName("Ivan"), Phone: "+380501234567"}
	require.NoError(t, repo.CreateClient(ctx, client))

	duplicate := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: client.Name, Phone: client.Phone}
	require.ErrorIs(t, repo.CreateClient(ctx, duplicate), entity.ErrConflict)

	got, err := repo.ClientByKey(ctx, client.Name, client.Phone)
	require.NoError(t, err)
	require.Equal(t, client, got)

	_, err = repo.ClientByID(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_FindClients(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	marker := uuid.Must(uuid.NewV4()).String()[:8]

	ivan := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "Ivan " + marker, Phone: "+380501110000"}
	ivanna := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "IVANNA " + marker, Phone: "+380672220000"}
	wildcard := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "100% " + marker, Phone: "+380933330000"}

	for _, c := range []entity.Client{ivan, ivanna, wildcard} {
		require.NoError(t, repo.CreateClient(ctx, c))
	}

	got, err := repo.FindClients(ctx, entity.ClientFilter{Name: "ivan " + marker})
	require.NoError(t, err)
	require.Equal(t, []entity.Client{ivan}, got)

	got, err = repo.FindClients(ctx, entity.ClientFilter{Name: marker})
	require.NoError(t, err)
	require.Len(t, got, 3)

	got, err = repo.FindClients(ctx, entity.ClientFilter{Name: marker, Phone: "0672220000"})
	require.NoError(t, err)
	require.Equal(t, []entity.Client{ivanna}, got)

	got, err = repo.FindClients(ctx, entity.ClientFilter{Name: "0% " + marker})
	require.NoError(t, err)
	require.Equal(t, []entity.Client{wildcard}, got)
}

func TestRepository_Vehicles(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	owner := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: uniqueName("Owner"), Phone: "+380501234000"}
	require.NoError(t, repo.CreateClient(ctx, owner))

	plate := "AA" + uuid.Must(uuid.NewV4()).String()[:6]

	vehicle := entity.Vehicle{
		ID:          uuid.Must(uuid.NewV4()),
		Brand:       "Toyota",
		Model:       "Camry",
		PlateNumber: plate,
		ClientID:    &owner.ID,
		Client:      &owner,
	}
	require.NoError(t, repo.CreateVehicle(ctx, vehicle))

	got, err := repo.VehicleByID(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Equal(t, vehicle, got)

	got, err = repo.VehicleByPlate(ctx, "aa"+plate[2:])
	require.NoError(t, err)
	require.Equal(t, vehicle.ID, got.ID)

	duplicate := entity.Vehicle{ID: uuid.Must(uuid.NewV4()), Brand: "Kia", Model: "Rio", PlateNumber: plate}
	require.ErrorIs(t, repo.CreateVehicle(ctx, duplicate), entity.ErrConflict)

	// Placeholder plates are not unique.
	for range 2 {
		free := entity.Vehicle{ID: uuid.Must(uuid.NewV4()), Brand: "Kia", Model: plate, PlateNumber: entity.PlatePlaceholder}
		require.NoError(t, repo.CreateVehicle(ctx, free))
	}

	found, err := repo.FindVehicles(ctx, entity.VehicleFilter{Model: plate, FreeOnly: true})
	require.NoError(t, err)
	require.Len(t, found, 2)

	for _, v := range found {
		require.Nil(t, v.Client)
	}
}

func TestRepository_CreateRecord(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	client := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: uniqueName("Client"), Phone: "+380501230000"}
	require.NoError(t, repo.CreateClient(ctx, client))

	active := newService(t, repo, true)
	inactive := newService(t, repo, false)

	record := entity.JournalRecord{
		ID:         uuid.Must(uuid.NewV4()),
		Department: entity.DepartmentService,
		ClientID:   &client.ID,
		Phone:      client.Phone,
		ServiceID:  &inactive.ID,
		Services:   []entity.Service{active},
		Comment:    "[ADD][alice][01.01.2024 10:00]\nfirst",
	}

	before := time.Now().Add(-time.Minute)

	got, err := repo.CreateRecord(ctx, record)
	require.NoError(t, err)
	require.Equal(t, record.ID, got.ID)
	require.True(t, got.CreatedAt.After(before))
	require.False(t, got.IsPriority)
	require.Equal(t, &client, got.Client)
	require.Nil(t, got.Vehicle)
	require.Equal(t, &inactive, got.Service)
	require.Equal(t, []entity.Service{active}, got.Services)
	require.Equal(t, record.Comment, got.Comment)

	_, err = repo.RecordByID(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_AppendComment_Concurrent(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	record, err := repo.CreateRecord(ctx, entity.JournalRecord{
		ID:         uuid.Must(uuid.NewV4()),
		Department: entity.DepartmentSales,
		Comment:    "first",
	})
	require.NoError(t, err)

	const writers = 5

	var wg sync.WaitGroup

	errs := make(chan error, writers)

	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.AppendComment(ctx, record.ID, fmt.Sprintf("block-%d", i))
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.RecordByID(ctx, record.ID)
	require.NoError(t, err)
	require.True(t, len(got.Comment) > len("first"))
	require.Equal(t, "first", got.Comment[:len("first")])

	for i := range writers {
		require.Contains(t, got.Comment, fmt.Sprintf("\n\nblock-%d", i))
	}

	require.True(t, record.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.AppendComment(ctx, uuid.Must(uuid.NewV4()), "block")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_TogglePriority(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	record, err := repo.CreateRecord(ctx, entity.JournalRecord{
		ID:         uuid.Must(uuid.NewV4()),
		Department: entity.DepartmentSales,
	})
	require.NoError(t, err)

	got, err := repo.TogglePriority(ctx, record.ID)
	require.NoError(t, err)
	require.True(t, got.IsPriority)

	got, err = repo.TogglePriority(ctx, record.ID)
	require.NoError(t, err)
	require.False(t, got.IsPriority)

	_, err = repo.TogglePriority(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_ListRecords(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	marker := uuid.Must(uuid.NewV4()).String()

	var ids []uuid.UUID

	for _, dept := range []entity.Department{entity.DepartmentSales, entity.DepartmentService, entity.DepartmentSales} {
		record, err := repo.CreateRecord(ctx, entity.JournalRecord{
			ID:         uuid.Must(uuid.NewV4()),
			Department: dept,
			Comment:    "note " + marker,
		})
		require.NoError(t, err)

		ids = append(ids, record.ID)
	}

	_, err := repo.TogglePriority(ctx, ids[0])
	require.NoError(t, err)

	got, err := repo.ListRecords(ctx, entity.JournalFilter{
		Department: entity.DepartmentSales,
		Search:     marker,
		Order:      entity.DefaultOrder(),
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, ids[0], got[0].ID)
	require.True(t, got[0].IsPriority)
	require.Equal(t, ids[2], got[1].ID)
}

func TestRepository_ListRecords_ClientOrderMatchesCompare(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	marker := uuid.Must(uuid.NewV4()).String()

	for _, name := range []string{"Bob", "_zed", "alice", ""} {
		record := entity.JournalRecord{
			ID:         uuid.Must(uuid.NewV4()),
			Department: entity.DepartmentSales,
			Comment:    "note " + marker,
		}

		if name != "" {
			client := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: name + " " + marker}
			require.NoError(t, repo.CreateClient(ctx, client))

			record.ClientID = &client.ID
		}

		_, err := repo.CreateRecord(ctx, record)
		require.NoError(t, err)
	}

	for _, desc := range []bool{false, true} {
		order := entity.Order{Field: entity.SortByClient, Desc: desc}

		got, err := repo.ListRecords(ctx, entity.JournalFilter{Search: marker, Order: order, Limit: 10})
		require.NoError(t, err)
		require.Len(t, got, 4)
		require.True(t, slices.IsSortedFunc(got, order.Compare), "desc=%v", desc)
		require.Nil(t, got[3].ClientID)
	}
}

func newService(t *testing.T, repo *repository.Repository, active bool) entity.Service {
	t.Helper()

	svc := entity.Service{ID: uuid.Must(uuid.NewV4()), Name: uniqueName("Service"), IsActive: active}
	require.NoError(t, repo.CreateService(context.Background(), svc))

	return svc
}

func uniqueName(prefix string) string {
	return prefix + " " + uuid.Must(uuid.NewV4()).String()
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		_, migrateErr = postgres.Migrate(context.Background(), dsn)
	})
	require.NoError(t, migrateErr)

	pool, err := postgres.Connect(context.Background(), config.Postgres{DSN: dsn, MaxConn: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}
