package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

// ResolveServices looks up the primary service without the active filter
// and keeps only the active services among ids. Unknown ids are dropped.
func (s *Service) ResolveServices(ctx context.Context, primaryID *uuid.UUID, ids []uuid.UUID) (*entity.Service, []entity.Service, error) {
	var primary *entity.Service

	if primaryID = nilIfEmpty(primaryID); primaryID != nil {
		svc, err := s.catalog.ServiceByID(ctx, *primaryID)
		if err != nil {
			return nil, nil, fmt.Errorf("service %s: %w", primaryID, err)
		}

		primary = &svc
	}

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return primary, nil, nil
	}

	attached, err := s.catalog.ActiveServicesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("active services: %w", err)
	}

	return primary, attached, nil
}

func (s *Service) ActiveServices(ctx context.Context) ([]entity.Service, error) {
	services, err := s.catalog.ActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("active services: %w", err)
	}

	return services, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if id.IsNil() {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
