package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/internal/clients/auth"
	"github.com/samandr77/microservices/journal/internal/entity"
	"github.com/samandr77/microservices/journal/pkg/config"
)

func TestClient_User(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())

	for _, tt := range []struct {
		name      string
		handler   func(calls *atomic.Int32) http.HandlerFunc
		wantUser  entity.User
		wantErr   error
		anyErr    bool
		wantCalls int32
	}{
		{
			name: "valid token",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)

					var req auth.ValidateRequest
					if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token != "token" {
						w.WriteHeader(http.StatusBadRequest)
						return
					}

					_ = json.NewEncoder(w).Encode(auth.ValidateResponse{
						ID:        userID,
						Username:  "alice",
						FirstName: "Alice",
						LastName:  "Smith",
					})
				}
			},
			wantUser:  entity.User{ID: userID, Username: "alice", FirstName: "Alice", LastName: "Smith"},
			wantCalls: 1,
		},
		{
			name: "rejected token is not retried",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, _ *http.Request) {
					calls.Add(1)
					w.WriteHeader(http.StatusUnauthorized)
				}
			},
			wantErr:   entity.ErrUnauthenticated,
			wantCalls: 1,
		},
		{
			name: "server error is retried",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, _ *http.Request) {
					if calls.Add(1) == 1 {
						w.WriteHeader(http.StatusBadGateway)
						return
					}

					_ = json.NewEncoder(w).Encode(auth.ValidateResponse{ID: userID, Username: "bob"})
				}
			},
			wantUser:  entity.User{ID: userID, Username: "bob"},
			wantCalls: 2,
		},
		{
			name: "persistent server error",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, _ *http.Request) {
					calls.Add(1)
					w.WriteHeader(http.StatusInternalServerError)
				}
			},
			anyErr:    true,
			wantCalls: 3,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			srv := httptest.NewServer(tt.handler(&calls))
			defer srv.Close()

			c := auth.NewClient(config.Auth{
				ServiceURL:    srv.URL,
				Timeout:       time.Second,
				RetryAttempts: 2,
			})

			user, err := c.User(context.Background(), "token")

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantUser, user)
			}

			require.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
