package api

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

const maxFormMemory = 1 << 20

// IDList accepts a JSON array of ids, a string holding such an array,
// a single id string or null.
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw any

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	ids, err := idsFromValue(raw)
	if err != nil {
		return err
	}

	*l = ids

	return nil
}

func idsFromValue(v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return idsFromString(v)
	case []any:
		ids := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: id must be a string, got %v", entity.ErrInvalidArgument, item)
			}

			if s = strings.TrimSpace(s); s != "" {
				ids = append(ids, s)
			}
		}

		return ids, nil
	}

	return nil, fmt.Errorf("%w: unexpected id list %v", entity.ErrInvalidArgument, v)
}

func idsFromString(s string) ([]string, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return nil, nil
	case strings.HasPrefix(s, "["):
		var items []any

		err := json.Unmarshal([]byte(s), &items)
		if err != nil {
			return nil, fmt.Errorf("%w: id list: %s", entity.ErrInvalidArgument, err)
		}

		return idsFromValue(items)
	}

	return []string{s}, nil
}

func parseOptionalID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}

	id, err := uuid.FromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %q", entity.ErrInvalidArgument, field, raw)
	}

	return &id, nil
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))

	for _, s := range raw {
		id, err := uuid.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", entity.ErrInvalidArgument, field, s)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

type CreateJournalRequest struct {
	Department   string `json:"department"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	Phone        string `json:"phone"`
	VehicleID    string `json:"vehicle_id"`
	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
	PlateNumber  string `json:"plate_number"`
	ServiceID    string `json:"service_id"`
	ServiceIDs   IDList `json:"service_ids"`
	Comment      string `json:"comment"`
}

// Input converts the request into the service input. It is the only place
// where raw ids are parsed.
func (req CreateJournalRequest) Input() (entity.CreateRecordInput, error) {
	var (
		in  entity.CreateRecordInput
		err error
	)

	in.Department = entity.Department(strings.TrimSpace(req.Department))
	in.Comment = req.Comment

	in.Client.Name = req.ClientName
	in.Client.Phone = req.Phone

	in.Client.ID, err = parseOptionalID("client_id", req.ClientID)
	if err != nil {
		return entity.CreateRecordInput{}, err
	}

	in.Vehicle.Brand = req.VehicleBrand
	in.Vehicle.Model = req.VehicleModel
	in.Vehicle.PlateNumber = req.PlateNumber

	in.Vehicle.ID, err = parseOptionalID("vehicle_id", req.VehicleID)
	if err != nil {
		return entity.CreateRecordInput{}, err
	}

	in.ServiceID, err = parseOptionalID("service_id", req.ServiceID)
	if err != nil {
		return entity.CreateRecordInput{}, err
	}

	in.ServiceIDs, err = parseIDs("service_ids", req.ServiceIDs)
	if err != nil {
		return entity.CreateRecordInput{}, err
	}

	return in, nil
}

func decodeCreateJournalRequest(r *http.Request) (CreateJournalRequest, error) {
	var req CreateJournalRequest

	form, ok, err := parseForm(r)
	if err != nil {
		return req, err
	}

	if !ok {
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			return req, fmt.Errorf("%w: decode body: %s", entity.ErrInvalidArgument, err)
		}

		return req, nil
	}

	req = CreateJournalRequest{
		Department:   form.Get("department"),
		ClientID:     form.Get("client_id"),
		ClientName:   form.Get("client_name"),
		Phone:        form.Get("phone"),
		VehicleID:    form.Get("vehicle_id"),
		VehicleBrand: form.Get("vehicle_brand"),
		VehicleModel: form.Get("vehicle_model"),
		PlateNumber:  form.Get("plate_number"),
		ServiceID:    form.Get("service_id"),
		Comment:      form.Get("comment"),
	}

	for _, v := range form["service_ids"] {
		ids, err := idsFromString(v)
		if err != nil {
			return req, err
		}

		req.ServiceIDs = append(req.ServiceIDs, ids...)
	}

	return req, nil
}

type AppendCommentRequest struct {
	Comment string `json:"comment"`
}

func decodeAppendCommentRequest(r *http.Request) (AppendCommentRequest, error) {
	var req AppendCommentRequest

	form, ok, err := parseForm(r)
	if err != nil {
		return req, err
	}

	if ok {
		req.Comment = form.Get("comment")
		return req, nil
	}

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return req, fmt.Errorf("%w: decode body: %s", entity.ErrInvalidArgument, err)
	}

	return req, nil
}

// parseForm returns the posted form when the request is form-encoded.
func parseForm(r *http.Request) (url.Values, bool, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, false, nil //nolint:nilerr // not a form, decoded as JSON
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		err = r.ParseForm()
	case "multipart/form-data":
		err = r.ParseMultipartForm(maxFormMemory)
	default:
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("%w: parse form: %s", entity.ErrInvalidArgument, err)
	}

	return r.PostForm, true, nil
}

type ResolveClientRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (req ResolveClientRequest) Input() (entity.ClientInput, error) {
	id, err := parseOptionalID("client_id", req.ClientID)
	if err != nil {
		return entity.ClientInput{}, err
	}

	return entity.ClientInput{ID: id, Name: req.Name, Phone: req.Phone}, nil
}

type ResolveVehicleRequest struct {
	VehicleID   string `json:"vehicle_id"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	ClientID    string `json:"client_id"`
}

func (req ResolveVehicleRequest) Input() (entity.VehicleInput, error) {
	id, err := parseOptionalID("vehicle_id", req.VehicleID)
	if err != nil {
		return entity.VehicleInput{}, err
	}

	clientID, err := parseOptionalID("client_id", req.ClientID)
	if err != nil {
		return entity.VehicleInput{}, err
	}

	return entity.VehicleInput{
		ID:          id,
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		ClientID:    clientID,
	}, nil
}

func parseJournalFilter(q url.Values) (entity.JournalFilter, error) {
	filter := entity.JournalFilter{
		Department: entity.Department(strings.TrimSpace(q.Get("department"))),
		Search:     q.Get("search"),
	}

	order, err := entity.ParseOrder(q.Get("order"))
	if err != nil {
		return entity.JournalFilter{}, err
	}

	if v := q.Get("priority_first"); v != "" {
		order.PriorityFirst, err = strconv.ParseBool(v)
		if err != nil {
			return entity.JournalFilter{}, fmt.Errorf("%w: priority_first: %q", entity.ErrInvalidArgument, v)
		}
	}

	filter.Order = order

	filter.Limit, err = parseUint(q, "limit")
	if err != nil {
		return entity.JournalFilter{}, err
	}

	filter.Offset, err = parseUint(q, "offset")
	if err != nil {
		return entity.JournalFilter{}, err
	}

	return filter, nil
}

func parseUint(q url.Values, key string) (uint64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", entity.ErrInvalidArgument, key, v)
	}

	return n, nil
}
