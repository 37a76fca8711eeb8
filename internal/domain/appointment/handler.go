package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vita-health/vita/internal/platform/auth"
	"github.com/vita-health/vita/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the appointment endpoints. Paths mirror the original
// dashboard API so the existing client keeps working.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/appointments", auth.RequireRole("doctor"))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.PATCH("/:id/notas", h.AttachNotes)
	g.GET("/:id", h.Get)
	g.GET("/historial/:medicoId", h.History)
	g.GET("/dashboard/resumen", h.Summary)
	g.GET("/horarios", h.Slots)
}

// List returns a doctor's appointments together with the server-side
// upcoming/overdue partition.
func (h *Handler) List(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("medicoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicoId")
	}
	ctx := c.Request().Context()
	appts, err := h.svc.ListByDoctor(ctx, doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	cls := Classify(appts, time.Now().UTC())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"citas":     h.svc.ToWireList(ctx, appts),
		"proximas":  h.svc.ToWireList(ctx, cls.Upcoming),
		"atrasadas": h.svc.ToWireList(ctx, cls.Overdue),
	})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ctx := c.Request().Context()
	a, err := h.svc.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"cita": h.svc.ToWire(ctx, a)})
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := ParseWireDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a := &Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		SpecialtyID: req.SpecialtyID,
		Date:        date,
		Time:        req.Time,
		Reason:      req.Reason,
		PaymentMode: req.PaymentMode,
		Amount:      req.Amount,
	}
	ctx := c.Request().Context()
	if err := h.svc.Book(ctx, a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"cita":    h.svc.ToWire(ctx, a),
	})
}

// Update applies a status change. `estado: reprogramada` carries the new
// slot; other targets need no payload beyond the status itself.
func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	target, ok := ParseWireStatus(req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown estado "+req.Status)
	}

	payload := TransitionPayload{
		Time:        req.NewTime,
		SpecialtyID: req.SpecialtyID,
		Reason:      req.Reason,
		Amount:      req.Amount,
	}
	if req.NewDate != "" {
		payload.Date, err = ParseWireDate(req.NewDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	ctx := c.Request().Context()
	a, err := h.svc.ApplyTransition(ctx, id, target, payload)
	if err != nil {
		return transitionHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"cita":    h.svc.ToWire(ctx, a),
	})
}

// AttachNotes completes the consultation with clinical notes.
func (h *Handler) AttachNotes(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req NotesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	a, err := h.svc.CompleteWithNotes(ctx, id, req.Notes)
	if err != nil {
		return transitionHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"cita":    h.svc.ToWire(ctx, a),
	})
}

func (h *Handler) History(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("medicoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicoId")
	}
	pg := pagination.FromContext(c)
	ctx := c.Request().Context()
	items, total, err := h.svc.History(ctx, doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"citas": h.svc.ToWireList(ctx, items),
		"total": total,
	})
}

func (h *Handler) Summary(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("medicoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicoId")
	}
	sum, err := h.svc.SummaryForDoctor(c.Request().Context(), doctorID, time.Now().UTC())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}

// Slots returns the free start times for a doctor on a day.
func (h *Handler) Slots(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("medicoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicoId")
	}
	day, err := ParseWireDate(c.QueryParam("fecha"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	slots, err := h.svc.SlotsForDoctor(c.Request().Context(), doctorID, day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	out := make([]string, len(slots))
	for i, t := range slots {
		out[i] = t.String()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"horarios": out})
}

// transitionHTTPError maps engine error kinds to status codes so the client
// can render a specific message.
func transitionHTTPError(err error) error {
	var vErr *ValidationError
	var stateErr *InvalidStateError
	var targetErr *InvalidTargetError
	switch {
	case errors.As(err, &vErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, vErr.Error())
	case errors.As(err, &stateErr):
		return echo.NewHTTPError(http.StatusConflict, stateErr.Error())
	case errors.As(err, &targetErr):
		return echo.NewHTTPError(http.StatusBadRequest, targetErr.Error())
	}
	return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
}
