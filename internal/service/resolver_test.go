package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/journal/internal/entity"
	"github.com/samandr77/microservices/journal/internal/mocks"
	"github.com/samandr77/microservices/journal/internal/service"
	"github.com/samandr77/microservices/journal/pkg/lock"
)

func TestService_ResolveClient_Idempotent(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	ctx := context.Background()

	in := entity.ClientInput{Name: " Ivan Petrenko ", Phone: "+380501234567"}
	filter := entity.ClientFilter{Name: "Ivan Petrenko", Phone: "+380501234567", Limit: 51}

	var stored entity.Client

	gomock.InOrder(
		d.clients.EXPECT().FindClients(ctx, filter).Return(nil, nil),
		d.clients.EXPECT().ClientByKey(ctx, "Ivan Petrenko", "+380501234567").Return(entity.Client{}, entity.ErrNotFound),
		d.clients.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c entity.Client) error {
			stored = c
			return nil
		}),
		d.clients.EXPECT().FindClients(ctx, filter).DoAndReturn(func(context.Context, entity.ClientFilter) ([]entity.Client, error) {
			return []entity.Client{stored}, nil
		}),
	)

	first, created, err := s.ResolveClient(ctx, in)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "Ivan Petrenko", first.Name)
	require.Equal(t, "+380501234567", first.Phone)

	second, created, err := s.ResolveClient(ctx, in)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
}

func TestService_ResolveClient_Ambiguous(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	ctx := context.Background()

	candidates := []entity.Client{
		{ID: newID(), Name: "Ivan Petrenko", Phone: "+380501234567"},
		{ID: newID(), Name: "Ivanna Petrenko", Phone: "+380501234567"},
	}

	d.clients.EXPECT().FindClients(ctx, entity.ClientFilter{Name: "Ivan", Phone: "+380501234567", Limit: 51}).
		Return(candidates, nil)

	_, _, err := s.ResolveClient(ctx, entity.ClientInput{Name: "Ivan", Phone: "+380501234567"})
	require.ErrorIs(t, err, entity.ErrAmbiguousMatch)

	var ambiguous *entity.AmbiguousMatchError
	require.True(t, errors.As(err, &ambiguous))
	require.Equal(t, entity.KindClient, ambiguous.Entity)
	require.Equal(t, candidates, ambiguous.Clients)
}

func TestService_ResolveClient_CandidateLimit(t *testing.T) {
	t.Parallel()

	clients := []entity.Client{
		{ID: newID(), Name: "Ivan", Phone: "+380501234567"},
		{ID: newID(), Name: "Ivanna", Phone: "+380501234567"},
		{ID: newID(), Name: "Ivanka", Phone: "+380501234567"},
	}

	for _, tt := range []struct {
		name          string
		found         []entity.Client
		wantClients   []entity.Client
		wantTruncated bool
	}{
		{
			name:        "two matches with a limit of one are still ambiguous",
			found:       clients[:2],
			wantClients: clients[:2],
		},
		{
			name:          "matches beyond the limit are reported as truncated",
			found:         clients,
			wantClients:   clients[:2],
			wantTruncated: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newTestServiceWith(t, lock.Nop{}, func(cfg *service.Config) {
				cfg.MaxCandidates = 1
			})
			ctx := context.Background()

			d.clients.EXPECT().FindClients(ctx, entity.ClientFilter{Name: "Iva", Limit: 3}).Return(tt.found, nil)

			_, _, err := s.ResolveClient(ctx, entity.ClientInput{Name: "Iva"})

			var ambiguous *entity.AmbiguousMatchError
			require.True(t, errors.As(err, &ambiguous))
			require.Equal(t, tt.wantClients, ambiguous.Clients)
			require.Equal(t, tt.wantTruncated, ambiguous.Truncated)
		})
	}
}

func TestService_ResolveVehicle_CandidateLimit(t *testing.T) {
	t.Parallel()

	vehicles := make([]entity.Vehicle, 0, 51)
	for range 51 {
		vehicles = append(vehicles, entity.Vehicle{ID: newID(), Brand: "Lada", Model: "2107", PlateNumber: "AA" + newID().String()[:4]})
	}

	s, d := newTestService(t)
	ctx := context.Background()

	d.vehicles.EXPECT().FindVehicles(ctx, entity.VehicleFilter{PlateNumber: "AA", Limit: 51}).Return(vehicles, nil)

	_, _, err := s.ResolveVehicle(ctx, entity.VehicleInput{PlateNumber: "AA"})

	var ambiguous *entity.AmbiguousMatchError
	require.True(t, errors.As(err, &ambiguous))
	require.Len(t, ambiguous.Vehicles, 50)
	require.True(t, ambiguous.Truncated)
}

func TestService_ResolveClient_UnknownIDFallsBackToSearch(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	ctx := context.Background()

	id := newID()
	existing := entity.Client{ID: newID(), Name: "Olena", Phone: "+380671112233"}

	d.clients.EXPECT().ClientByID(ctx, id).Return(entity.Client{}, entity.ErrNotFound)
	d.clients.EXPECT().FindClients(ctx, entity.ClientFilter{Phone: "0671112233", Limit: 51}).
		Return([]entity.Client{existing}, nil)

	got, created, err := s.ResolveClient(ctx, entity.ClientInput{ID: &id, Phone: "067 111-22-33"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, got)
}

func TestService_ResolveClient_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		in          entity.ClientInput
		wantErr     error
		wantMissing []string
	}{
		{
			name:        "nothing supplied",
			in:          entity.ClientInput{},
			wantErr:     entity.ErrIncompleteEntity,
			wantMissing: []string{"name", "phone"},
		},
		{
			name:        "name only",
			in:          entity.ClientInput{Name: "Ivan"},
			wantErr:     entity.ErrIncompleteEntity,
			wantMissing: []string{"phone"},
		},
		{
			name:        "phone only",
			in:          entity.ClientInput{Phone: "+380501234567"},
			wantErr:     entity.ErrIncompleteEntity,
			wantMissing: []string{"name"},
		},
		{
			name:    "invalid phone",
			in:      entity.ClientInput{Name: "Ivan", Phone: "12"},
			wantErr: entity.ErrInvalidPhone,
		},
		{
			name:    "name too long",
			in:      entity.ClientInput{Name: strings.Repeat("x", 256), Phone: "+380501234567"},
			wantErr: entity.ErrInvalidArgument,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newTestService(t)
			d.clients.EXPECT().FindClients(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			_, _, err := s.ResolveClient(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantMissing != nil {
				var incomplete *entity.IncompleteEntityError
				require.True(t, errors.As(err, &incomplete))
				require.Equal(t, entity.KindClient, incomplete.Entity)
				require.Equal(t, tt.wantMissing, incomplete.Missing)
			}
		})
	}
}

func TestService_ResolveClient_ConflictRetry(t *testing.T) {
	t.Parallel()

	existing := entity.Client{ID: newID(), Name: "Ivan", Phone: "+380501234567"}

	for _, tt := range []struct {
		name      string
		reread    entity.Client
		rereadErr error
		want      entity.Client
		wantErr   error
	}{
		{
			name:   "concurrent insert is reused",
			reread: existing,
			want:   existing,
		},
		{
			name:      "conflict without a visible row",
			rereadErr: entity.ErrNotFound,
			wantErr:   entity.ErrConflict,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newTestService(t)
			ctx := context.Background()

			gomock.InOrder(
				d.clients.EXPECT().FindClients(ctx, gomock.Any()).Return(nil, nil),
				d.clients.EXPECT().ClientByKey(ctx, "Ivan", "+380501234567").Return(entity.Client{}, entity.ErrNotFound),
				d.clients.EXPECT().CreateClient(ctx, gomock.Any()).Return(entity.ErrConflict),
				d.clients.EXPECT().ClientByKey(ctx, "Ivan", "+380501234567").Return(tt.reread, tt.rereadErr),
			)

			got, created, err := s.ResolveClient(ctx, entity.ClientInput{Name: "Ivan", Phone: "0501234567"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.False(t, created)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ResolveClient_LockUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	locker := mocks.NewMockLocker(ctrl)
	locker.EXPECT().Obtain(gomock.Any(), "client:ivan:+380501234567").Return(nil, errors.New("redis is down"))

	s, d := newTestServiceWithLocker(t, locker)
	ctx := context.Background()

	d.clients.EXPECT().FindClients(ctx, gomock.Any()).Return(nil, nil)
	d.clients.EXPECT().ClientByKey(ctx, "Ivan", "+380501234567").Return(entity.Client{}, entity.ErrNotFound)
	d.clients.EXPECT().CreateClient(ctx, gomock.Any()).Return(nil)

	_, created, err := s.ResolveClient(ctx, entity.ClientInput{Name: "Ivan", Phone: "+380501234567"})
	require.NoError(t, err)
	require.True(t, created)
}

func TestService_ResolveVehicle_PlaceholderPlate(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	ctx := context.Background()

	d.vehicles.EXPECT().CreateVehicle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v entity.Vehicle) error {
		require.Equal(t, entity.PlatePlaceholder, v.PlateNumber)
		require.Equal(t, "Toyota", v.Brand)
		require.Equal(t, "Camry", v.Model)
		require.Nil(t, v.ClientID)

		return nil
	})

	got, created, err := s.ResolveVehicle(ctx, entity.VehicleInput{Brand: "Toyota", Model: "Camry"})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, entity.PlatePlaceholder, got.PlateNumber)
}

func TestService_ResolveVehicle_ByPlate(t *testing.T) {
	t.Parallel()

	owner := entity.Client{ID: newID(), Name: "Ivan", Phone: "+380501234567"}
	camry := entity.Vehicle{ID: newID(), Brand: "Toyota", Model: "Camry", PlateNumber: "AA1234BB", ClientID: &owner.ID, Client: &owner}
	rio := entity.Vehicle{ID: newID(), Brand: "Kia", Model: "Rio", PlateNumber: "AA1234BC"}

	t.Run("unique match is reused even if brand differs", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.vehicles.EXPECT().FindVehicles(ctx, entity.VehicleFilter{PlateNumber: "aa1234bb", Limit: 51}).
			Return([]entity.Vehicle{camry}, nil)

		got, created, err := s.ResolveVehicle(ctx, entity.VehicleInput{PlateNumber: "aa1234bb", Brand: "Lexus"})
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, camry, got)
	})

	t.Run("several matches", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.vehicles.EXPECT().FindVehicles(ctx, entity.VehicleFilter{PlateNumber: "AA1234", Limit: 51}).
			Return([]entity.Vehicle{camry, rio}, nil)

		_, _, err := s.ResolveVehicle(ctx, entity.VehicleInput{PlateNumber: "AA1234", Brand: "Toyota", Model: "Camry"})

		var ambiguous *entity.AmbiguousMatchError
		require.True(t, errors.As(err, &ambiguous))
		require.Equal(t, entity.KindVehicle, ambiguous.Entity)
		require.Equal(t, []entity.Vehicle{camry, rio}, ambiguous.Vehicles)
	})

	t.Run("new plate with owner", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.vehicles.EXPECT().FindVehicles(ctx, gomock.Any()).Return(nil, nil)
		d.clients.EXPECT().ClientByID(ctx, owner.ID).Return(owner, nil)
		d.vehicles.EXPECT().VehicleByPlate(ctx, "BC0001AA").Return(entity.Vehicle{}, entity.ErrNotFound)
		d.vehicles.EXPECT().CreateVehicle(ctx, gomock.Any()).Return(nil)

		got, created, err := s.ResolveVehicle(ctx, entity.VehicleInput{
			PlateNumber: "BC0001AA",
			Brand:       "Skoda",
			Model:       "Octavia",
			ClientID:    &owner.ID,
		})
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, &owner.ID, got.ClientID)
		require.Equal(t, &owner, got.Client)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		ownerID := newID()

		d.vehicles.EXPECT().FindVehicles(ctx, gomock.Any()).Return(nil, nil)
		d.clients.EXPECT().ClientByID(ctx, ownerID).Return(entity.Client{}, entity.ErrNotFound)

		_, _, err := s.ResolveVehicle(ctx, entity.VehicleInput{PlateNumber: "BC0002AA", Brand: "Skoda", Model: "Fabia", ClientID: &ownerID})
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("missing brand", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.vehicles.EXPECT().FindVehicles(ctx, gomock.Any()).Return(nil, nil)

		_, _, err := s.ResolveVehicle(ctx, entity.VehicleInput{PlateNumber: "BC0003AA", Model: "Fabia"})

		var incomplete *entity.IncompleteEntityError
		require.True(t, errors.As(err, &incomplete))
		require.Equal(t, []string{"brand"}, incomplete.Missing)
	})
}

func TestService_SearchVehicles(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	ctx := context.Background()

	_, err := s.SearchVehicles(ctx, entity.VehicleFilter{PlateNumber: "  "})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	d.vehicles.EXPECT().FindVehicles(ctx, entity.VehicleFilter{Brand: "Toyota", Limit: 50}).Return(nil, nil)

	_, err = s.SearchVehicles(ctx, entity.VehicleFilter{Brand: " Toyota ", Limit: 1000})
	require.NoError(t, err)

	d.vehicles.EXPECT().FindVehicles(ctx, entity.VehicleFilter{FreeOnly: true, Limit: 500}).Return(nil, nil)

	_, err = s.FreeVehicles(ctx)
	require.NoError(t, err)
}
