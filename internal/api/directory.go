package api

import (
	"encoding/json"
	"net/http"

	"github.com/samandr77/microservices/journal/internal/entity"
)

// ResolveClient finds a client by id, name or phone and creates it when nothing matches.
func (h *Handler) ResolveClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResolveClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний JSON")
		return
	}

	in, err := req.Input()
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	client, created, err := h.s.ResolveClient(ctx, in)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ResolveClientResponse{Client: clientToAPI(client), Created: created})
}

// ResolveVehicle finds a vehicle by id or plate number and creates it when nothing matches.
func (h *Handler) ResolveVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResolveVehicleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалідний JSON")
		return
	}

	in, err := req.Input()
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	vehicle, created, err := h.s.ResolveVehicle(ctx, in)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ResolveVehicleResponse{Vehicle: vehicleToAPI(vehicle), Created: created})
}

func (h *Handler) FreeVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicles, err := h.s.FreeVehicles(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, vehiclesToAPI(vehicles))
}

func (h *Handler) SearchVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	vehicles, err := h.s.SearchVehicles(ctx, entity.VehicleFilter{
		PlateNumber: q.Get("plate_number"),
		Brand:       q.Get("brand"),
		Model:       q.Get("model"),
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, vehiclesToAPI(vehicles))
}

func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.s.ActiveServices(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, servicesToAPI(services))
}
