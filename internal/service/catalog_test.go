package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func TestService_ResolveServices(t *testing.T) {
	t.Parallel()

	oil := entity.Service{ID: newID(), Name: "Заміна масла", IsActive: true}
	tires := entity.Service{ID: newID(), Name: "Шиномонтаж", IsActive: true}

	t.Run("ids are deduplicated", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.catalog.EXPECT().ServiceByID(ctx, oil.ID).Return(oil, nil)
		d.catalog.EXPECT().ActiveServicesByIDs(ctx, []uuid.UUID{tires.ID, oil.ID}).
			Return([]entity.Service{oil, tires}, nil)

		primary, attached, err := s.ResolveServices(ctx, &oil.ID, []uuid.UUID{tires.ID, uuid.Nil, oil.ID, tires.ID})
		require.NoError(t, err)
		require.Equal(t, &oil, primary)
		require.Equal(t, []entity.Service{oil, tires}, attached)
	})

	t.Run("nothing requested", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		primary, attached, err := s.ResolveServices(context.Background(), idPtr(uuid.Nil), nil)
		require.NoError(t, err)
		require.Nil(t, primary)
		require.Empty(t, attached)
	})

	t.Run("active catalog", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		ctx := context.Background()

		d.catalog.EXPECT().ActiveServices(ctx).Return([]entity.Service{oil, tires}, nil)

		got, err := s.ActiveServices(ctx)
		require.NoError(t, err)
		require.Equal(t, []entity.Service{oil, tires}, got)
	})
}
