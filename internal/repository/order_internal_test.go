package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func TestOrderBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order entity.Order
		want  []string
	}{
		{
			name:  "default",
			order: entity.DefaultOrder(),
			want:  []string{"j.is_priority DESC", "j.created_at DESC", "j.id"},
		},
		{
			name:  "client ascending",
			order: entity.Order{Field: entity.SortByClient},
			want:  []string{`NULLIF(lower(c.name), '') COLLATE "C" ASC NULLS LAST`, "j.id"},
		},
		{
			name:  "phone descending",
			order: entity.Order{Field: entity.SortByPhone, Desc: true, PriorityFirst: true},
			want:  []string{"j.is_priority DESC", `NULLIF(j.phone, '') COLLATE "C" DESC NULLS LAST`, "j.id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, orderBy(tt.order))
		})
	}
}
