package metrics

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vita-health/vita/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the KPI endpoints consumed by the dashboard charts.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/appointments/metrics", auth.RequireRole("doctor"))
	g.GET("/ingresos-semanales", h.WeeklyRevenue)
	g.GET("/ingresos-mensuales", h.MonthlyRevenue)
	g.GET("/citas-estado", h.AppointmentsByStatus)
	g.GET("/pacientes-tipo", h.PatientsByType)
	g.GET("/horarios-demanda", h.DemandByHour)
}

func doctorID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.QueryParam("medicoId"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid medicoId")
	}
	return id, nil
}

func (h *Handler) WeeklyRevenue(c echo.Context) error {
	id, err := doctorID(c)
	if err != nil {
		return err
	}
	points, err := h.svc.WeeklyRevenue(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) MonthlyRevenue(c echo.Context) error {
	id, err := doctorID(c)
	if err != nil {
		return err
	}
	points, err := h.svc.MonthlyRevenue(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) AppointmentsByStatus(c echo.Context) error {
	id, err := doctorID(c)
	if err != nil {
		return err
	}
	counts, err := h.svc.AppointmentsByStatus(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) PatientsByType(c echo.Context) error {
	id, err := doctorID(c)
	if err != nil {
		return err
	}
	counts, err := h.svc.PatientsByType(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) DemandByHour(c echo.Context) error {
	id, err := doctorID(c)
	if err != nil {
		return err
	}
	demand, err := h.svc.DemandByHour(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, demand)
}
