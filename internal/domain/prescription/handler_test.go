package prescription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, newMockLinker())
	return NewHandler(svc), echo.New(), repo
}

func TestHandler_Create(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"citaId":"` + uuid.New().String() + `","medicamentos":[` +
		`{"nombre":"Paracetamol","dosis":"500mg","frecuencia":"8h","duracion":"5 dias"}],` +
		`"observaciones":"tomar con alimentos"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool         `json:"success"`
		Receta  Prescription `json:"receta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || len(resp.Receta.Medications) != 1 {
		t.Errorf("wrong response: %+v", resp)
	}
}

func TestHandler_Create_Duplicate(t *testing.T) {
	h, e, repo := newTestHandler()
	apptID := uuid.New()
	repo.byAppointment[apptID] = &Prescription{
		ID:            uuid.New(),
		AppointmentID: apptID,
		Medications:   []Medication{med("Paracetamol")},
	}

	body := `{"citaId":"` + apptID.String() + `","medicamentos":[` +
		`{"nombre":"Ibuprofeno","dosis":"400mg","frecuencia":"12h","duracion":"3 dias"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_Create_NoCompleteMedication(t *testing.T) {
	h, e, _ := newTestHandler()
	body := `{"citaId":"` + uuid.New().String() + `","medicamentos":[{"nombre":"Ibuprofeno"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_GetByAppointment(t *testing.T) {
	h, e, repo := newTestHandler()
	apptID := uuid.New()
	repo.byAppointment[apptID] = &Prescription{
		ID:            uuid.New(),
		AppointmentID: apptID,
		Medications:   []Medication{med("Paracetamol")},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(apptID.String())

	if err := h.GetByAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetByAppointment_NotFound(t *testing.T) {
	h, e, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetByAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
