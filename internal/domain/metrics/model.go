package metrics

// RevenuePoint is one bucket of the revenue chart. Period is a day
// ("2024-01-10") for the weekly view and a month ("2024-01") for the
// monthly view. Only completed appointments contribute revenue.
type RevenuePoint struct {
	Period string  `json:"periodo"`
	Total  float64 `json:"total"`
}

// StatusCount is one slice of the appointments-by-status chart. Status uses
// the wire vocabulary (pendiente, reprogramada, completada, cancelada).
type StatusCount struct {
	Status string `json:"estado"`
	Count  int    `json:"cantidad"`
}

// PatientTypeCount splits a doctor's patients into new (one appointment)
// and returning (more than one).
type PatientTypeCount struct {
	Type  string `json:"tipo"`
	Count int    `json:"cantidad"`
}

// HourDemand is one bar of the booking-demand histogram.
type HourDemand struct {
	Hour  string `json:"hora"`
	Count int    `json:"cantidad"`
}
