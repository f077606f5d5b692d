package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateRecord(ctx context.Context, in entity.CreateRecordInput) (entity.JournalRecord, error)
	AppendComment(ctx context.Context, id uuid.UUID, text string) (entity.JournalRecord, error)
	TogglePriority(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error)
	RecordByID(ctx context.Context, id uuid.UUID) (entity.JournalRecord, error)
	ListRecords(ctx context.Context, filter entity.JournalFilter) ([]entity.JournalRecord, error)
	ResolveClient(ctx context.Context, in entity.ClientInput) (entity.Client, bool, error)
	ResolveVehicle(ctx context.Context, in entity.VehicleInput) (entity.Vehicle, bool, error)
	FreeVehicles(ctx context.Context) ([]entity.Vehicle, error)
	SearchVehicles(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error)
	ActiveServices(ctx context.Context) ([]entity.Service, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeCreateJournalRequest(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний запит")
		return
	}

	in, err := req.Input()
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	record, err := h.s.CreateRecord(ctx, in)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, recordToAPI(record))
}

func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseJournalFilter(r.URL.Query())
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	records, err := h.s.ListRecords(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, JournalListResponse{
		Records: recordsToAPI(records),
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

func (h *Handler) JournalByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірний ідентифікатор запису")
		return
	}

	record, err := h.s.RecordByID(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, recordToAPI(record))
}

// AppendComment accepts only the comment. Any other field of the body is ignored.
func (h *Handler) AppendComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірний ідентифікатор запису")
		return
	}

	req, err := decodeAppendCommentRequest(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний запит")
		return
	}

	record, err := h.s.AppendComment(ctx, id, req.Comment)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, recordToAPI(record))
}

func (h *Handler) TogglePriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невірний ідентифікатор запису")
		return
	}

	record, err := h.s.TogglePriority(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, recordToAPI(record))
}
