package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func TestAmbiguousMatchError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("resolve client: %w", &entity.AmbiguousMatchError{
		Entity:  entity.KindClient,
		Clients: []entity.Client{{Name: "Ivan"}, {Name: "Ivanna"}},
	})

	require.ErrorIs(t, err, entity.ErrAmbiguousMatch)

	var ambiguous *entity.AmbiguousMatchError
	require.True(t, errors.As(err, &ambiguous))
	require.Equal(t, 2, ambiguous.Candidates())
	require.Len(t, ambiguous.Clients, 2)
}

func TestIncompleteEntityError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create vehicle: %w", &entity.IncompleteEntityError{
		Entity:  entity.KindVehicle,
		Missing: []string{"brand", "model"},
	})

	require.ErrorIs(t, err, entity.ErrIncompleteEntity)
	require.Contains(t, err.Error(), "vehicle requires brand, model")
}
