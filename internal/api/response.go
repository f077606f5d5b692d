package api

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/journal/internal/entity"
)

type ClientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
}

type VehicleResponse struct {
	ID          uuid.UUID       `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	PlateNumber string          `json:"plate_number"`
	Client      *ClientResponse `json:"client,omitempty"`
}

type ServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

type JournalRecordResponse struct {
	ID         uuid.UUID         `json:"id"`
	Date       time.Time         `json:"date"`
	Department entity.Department `json:"department"`
	IsPriority bool              `json:"is_priority"`
	Client     *ClientResponse   `json:"client"`
	Phone      string            `json:"phone"`
	Vehicle    *VehicleResponse  `json:"vehicle"`
	Service    *ServiceResponse  `json:"service"`
	Services   []ServiceResponse `json:"services"`
	Comment    string            `json:"comment"`
}

type JournalListResponse struct {
	Records []JournalRecordResponse `json:"records"`
	Limit   uint64                  `json:"limit,omitempty"`
	Offset  uint64                  `json:"offset"`
}

type ResolveClientResponse struct {
	Client  ClientResponse `json:"client"`
	Created bool           `json:"created"`
}

type ResolveVehicleResponse struct {
	Vehicle VehicleResponse `json:"vehicle"`
	Created bool            `json:"created"`
}

func clientToAPI(c entity.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func clientsToAPI(clients []entity.Client) []ClientResponse {
	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, clientToAPI(c))
	}

	return resp
}

func vehicleToAPI(v entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:          v.ID,
		Brand:       v.Brand,
		Model:       v.Model,
		PlateNumber: v.PlateNumber,
	}

	if v.Client != nil {
		c := clientToAPI(*v.Client)
		resp.Client = &c
	}

	return resp
}

func vehiclesToAPI(vehicles []entity.Vehicle) []VehicleResponse {
	resp := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, vehicleToAPI(v))
	}

	return resp
}

func serviceToAPI(s entity.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, IsActive: s.IsActive}
}

func servicesToAPI(services []entity.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, serviceToAPI(s))
	}

	return resp
}

func recordToAPI(r entity.JournalRecord) JournalRecordResponse {
	resp := JournalRecordResponse{
		ID:         r.ID,
		Date:       r.CreatedAt,
		Department: r.Department,
		IsPriority: r.IsPriority,
		Phone:      r.Phone,
		Services:   servicesToAPI(r.Services),
		Comment:    r.Comment,
	}

	if r.Client != nil {
		c := clientToAPI(*r.Client)
		resp.Client = &c
	}

	if r.Vehicle != nil {
		v := vehicleToAPI(*r.Vehicle)
		resp.Vehicle = &v
	}

	if r.Service != nil {
		s := serviceToAPI(*r.Service)
		resp.Service = &s
	}

	return resp
}

func recordsToAPI(records []entity.JournalRecord) []JournalRecordResponse {
	resp := make([]JournalRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, recordToAPI(r))
	}

	return resp
}
