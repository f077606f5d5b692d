package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/entity"
)

func TestIDList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		data    string
		want    IDList
		wantErr bool
	}{
		{name: "null", data: `null`, want: nil},
		{name: "array", data: `["a", " ", "b"]`, want: IDList{"a", "b"}},
		{name: "string with array", data: `"[\"a\",\"b\"]"`, want: IDList{"a", "b"}},
		{name: "single id", data: `" a "`, want: IDList{"a"}},
		{name: "empty string", data: `""`, want: nil},
		{name: "number in array", data: `[1]`, wantErr: true},
		{name: "object", data: `{}`, wantErr: true},
		{name: "broken array in string", data: `"[\"a\""`, wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got IDList

			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "null"} {
		id, err := parseOptionalID("client_id", raw)
		require.NoError(t, err)
		require.Nil(t, id)
	}

	_, err := parseOptionalID("client_id", "not-a-uuid")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
