package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Date acepta "YYYY-MM-DD" o RFC 3339 en JSON.
type Date struct {
	time.Time
}

// UnmarshalJSON interpreta null y "" como fecha vacía.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: se esperaba string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate interpreta "YYYY-MM-DD" o RFC 3339. "" devuelve la fecha cero.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: use YYYY-MM-DD o RFC 3339", s)
	}
	return t, nil
}

// CreateEventRequest entrada para proponer un evento (solo HR).
type CreateEventRequest struct {
	EventName     string `json:"eventName" validate:"required"`
	EventType     string `json:"eventType" validate:"required"`
	Location      string `json:"location" validate:"required"`
	ProposedDates []Date `json:"proposedDates" validate:"required,len=3"`
}

// ApproveEventRequest entrada para aprobar un evento con una de las fechas propuestas.
type ApproveEventRequest struct {
	ConfirmedDate Date `json:"confirmedDate"`
}

// RejectEventRequest entrada para rechazar un evento con motivo.
type RejectEventRequest struct {
	Remarks string `json:"remarks" validate:"required"`
}

// VendorRef proveedor asignado embebido en la respuesta del evento.
type VendorRef struct {
	ID         string `json:"id"`
	VendorName string `json:"vendorName"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID             string      `json:"id"`
	CompanyName    string      `json:"companyName"`
	EventName      string      `json:"eventName"`
	EventType      string      `json:"eventType"`
	Location       string      `json:"location"`
	ProposedDates  []time.Time `json:"proposedDates"`
	Status         string      `json:"status"`
	ConfirmedDate  *time.Time  `json:"confirmedDate"`
	Remarks        string      `json:"remarks"`
	CreatedBy      string      `json:"createdBy"`
	AssignedVendor *VendorRef  `json:"assignedVendor"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
