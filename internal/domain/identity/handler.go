package identity

import (
	"errors"
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

// RegisterRoutes mounts auth, profile, patient search and specialty routes.
// Paths mirror the original dashboard API.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/recover", h.Recover)

	profile := api.Group("/perfil", auth.RequireRole("doctor"))
	profile.GET("/:id", h.GetProfile)
	profile.PUT("/:id", h.UpdateProfile)

	doctor := api.Group("/appointments", auth.RequireRole("doctor"))
	doctor.GET("/pacientes/buscar", h.SearchPatients)
	doctor.GET("/especialidades", h.Specialties)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u.ToProfile(),
	})
}

// Recover acknowledges a password-recovery request. Delivery of the reset
// email is handled out of band; the endpoint never discloses whether the
// address exists.
func (h *Handler) Recover(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	u, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"perfil": u.ToProfile()})
}

type profileUpdateRequest struct {
	FirstName   string     `json:"nombre"`
	LastName    string     `json:"apellido"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefono"`
	SpecialtyID *uuid.UUID `json:"especialidadId"`
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	u, err := h.svc.GetProfile(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Email = req.Email
	if req.Phone != "" {
		u.Phone = &req.Phone
	}
	if req.SpecialtyID != nil {
		u.SpecialtyID = req.SpecialtyID
	}
	if err := h.svc.UpdateProfile(ctx, u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"perfil":  u.ToProfile(),
	})
}

func (h *Handler) SearchPatients(c echo.Context) error {
	patients, err := h.svc.SearchPatients(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	out := make([]Profile, len(patients))
	for i, p := range patients {
		out[i] = p.ToProfile()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"usuarios": out})
}

func (h *Handler) Specialties(c echo.Context) error {
	items, err := h.svc.Specialties(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"especialidades": items})
}
