package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/journal/internal/entity"
)

type ErrorResponse struct {
	Message     string   `json:"message"`
	Description string   `json:"description,omitempty"`
	Missing     []string `json:"missing,omitempty"`
	Candidates  any      `json:"candidates,omitempty"`
	Truncated   bool     `json:"truncated,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		resp.Description = originErr.Error()
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps service errors to HTTP responses.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) { //nolint:cyclop
	var (
		ambiguous  *entity.AmbiguousMatchError
		incomplete *entity.IncompleteEntityError
	)

	switch {
	case errors.As(err, &ambiguous):
		slog.WarnContext(ctx, "ambiguous match", "error", err.Error())

		resp := ErrorResponse{Description: err.Error(), Truncated: ambiguous.Truncated}

		if ambiguous.Entity == entity.KindVehicle {
			resp.Message = "Знайдено кілька автомобілів, уточніть вибір"
			resp.Candidates = vehiclesToAPI(ambiguous.Vehicles)
		} else {
			resp.Message = "Знайдено кілька клієнтів, уточніть вибір"
			resp.Candidates = clientsToAPI(ambiguous.Clients)
		}

		SendJSON(ctx, w, http.StatusBadRequest, resp)
	case errors.As(err, &incomplete):
		slog.WarnContext(ctx, "incomplete entity", "error", err.Error())

		msg := "Для створення клієнта потрібні ім'я та телефон"
		if incomplete.Entity == entity.KindVehicle {
			msg = "Для створення автомобіля потрібні марка та модель"
		}

		SendJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Message:     msg,
			Description: err.Error(),
			Missing:     incomplete.Missing,
		})
	case errors.Is(err, entity.ErrInvalidDepartment):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірний відділ")
	case errors.Is(err, entity.ErrEmptyComment):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Коментар не може бути порожнім")
	case errors.Is(err, entity.ErrInvalidPhone):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірний номер телефону")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірні параметри запиту")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Користувач не авторизований")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Не знайдено")
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Конфлікт даних, повторіть запит")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Внутрішня помилка сервера")
	}
}
