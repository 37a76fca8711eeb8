package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// The dashboard client predates this server and speaks the original API's
// Spanish field names and status values. This file is the only place that
// vocabulary appears; everything else uses the model's English names.

var statusToWire = map[Status]string{
	StatusPending:     "pendiente",
	StatusRescheduled: "reprogramada",
	StatusCompleted:   "completada",
	StatusCancelled:   "cancelada",
}

var statusFromWire = map[string]Status{
	"pendiente":    StatusPending,
	"reprogramada": StatusRescheduled,
	"completada":   StatusCompleted,
	"cancelada":    StatusCancelled,
}

// WireStatus returns the client-facing name for s.
func WireStatus(s Status) string { return statusToWire[s] }

// ParseWireStatus maps a client status name to the internal Status. The
// second result is false for unknown names.
func ParseWireStatus(s string) (Status, bool) {
	st, ok := statusFromWire[s]
	return st, ok
}

// PatientRef is the expanded patient reference embedded in list responses.
type PatientRef struct {
	ID        uuid.UUID `json:"_id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
}

// SpecialtyRef is the expanded specialty reference embedded in responses.
type SpecialtyRef struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"nombre"`
}

// Wire is the client-facing representation of an appointment.
type Wire struct {
	ID             uuid.UUID     `json:"_id"`
	Patient        *PatientRef   `json:"pacienteId,omitempty"`
	DoctorID       uuid.UUID     `json:"medicoId"`
	Specialty      *SpecialtyRef `json:"especialidadId,omitempty"`
	Date           string        `json:"fecha"`
	Time           string        `json:"hora"`
	Status         string        `json:"estado"`
	Reason         string        `json:"motivo"`
	PaymentMode    string        `json:"modoPago,omitempty"`
	Amount         float64       `json:"monto"`
	Notes          string        `json:"comentarios,omitempty"`
	PrescriptionID *uuid.UUID    `json:"recetaId,omitempty"`
}

// ToWire converts an appointment to the client representation, attaching the
// expanded patient and specialty references when available.
func (a *Appointment) ToWire(patient *PatientRef, specialty *SpecialtyRef) Wire {
	w := Wire{
		ID:             a.ID,
		Patient:        patient,
		DoctorID:       a.DoctorID,
		Specialty:      specialty,
		Date:           a.Date.UTC().Format("2006-01-02"),
		Time:           a.Time,
		Status:         WireStatus(a.Status),
		Reason:         a.Reason,
		PaymentMode:    a.PaymentMode,
		Amount:         a.Amount,
		PrescriptionID: a.PrescriptionID,
	}
	if a.Notes != nil {
		w.Notes = *a.Notes
	}
	return w
}

// CreateRequest is the booking payload posted by the dashboard.
type CreateRequest struct {
	DoctorID    uuid.UUID `json:"medicoId"`
	PatientID   uuid.UUID `json:"pacienteId"`
	SpecialtyID uuid.UUID `json:"especialidadId"`
	Date        string    `json:"fecha"`
	Time        string    `json:"hora"`
	Reason      string    `json:"motivo"`
	PaymentMode string    `json:"modoPago"`
	Amount      float64   `json:"monto"`
}

// UpdateRequest is the PATCH payload. A bare estado changes status; a
// reprogramada estado additionally carries the new slot.
type UpdateRequest struct {
	Status      string    `json:"estado"`
	NewDate     string    `json:"nuevaFecha"`
	NewTime     string    `json:"nuevoHora"`
	SpecialtyID uuid.UUID `json:"especialidadId"`
	Reason      string    `json:"motivo"`
	Amount      float64   `json:"monto"`
}

// NotesRequest attaches clinical notes, completing the consultation.
type NotesRequest struct {
	Notes string `json:"comentarios"`
}

// ParseWireDate parses the client's "YYYY-MM-DD" civil date as a UTC day.
func ParseWireDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}
