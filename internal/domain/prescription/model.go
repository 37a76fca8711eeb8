package prescription

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Medication is one line item on a prescription. Field names carry the
// dashboard's wire vocabulary; they are stored as JSONB as-is.
type Medication struct {
	Name      string `json:"nombre"`
	Dose      string `json:"dosis"`
	Frequency string `json:"frecuencia"`
	Duration  string `json:"duracion"`
}

// Complete reports whether every field of the line item is filled in.
func (m Medication) Complete() bool {
	return strings.TrimSpace(m.Name) != "" &&
		strings.TrimSpace(m.Dose) != "" &&
		strings.TrimSpace(m.Frequency) != "" &&
		strings.TrimSpace(m.Duration) != ""
}

// Prescription maps to the prescription table. One prescription per
// appointment; the appointment carries the back-reference.
type Prescription struct {
	ID            uuid.UUID    `db:"id" json:"_id"`
	AppointmentID uuid.UUID    `db:"appointment_id" json:"citaId"`
	Medications   []Medication `db:"medications" json:"medicamentos"`
	Observations  string       `db:"observations" json:"observaciones"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}
