package notification

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the notification endpoints the dashboard's bell
// badge polls.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/notificaciones")
	g.GET("/:userId", h.ListForUser)
	g.PATCH("/marcar-leidas/:userId", h.MarkAllRead)
}

func (h *Handler) ListForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	items, err := h.svc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"notificaciones": ToWireList(items),
	})
}

func (h *Handler) MarkAllRead(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	n, err := h.svc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark notifications read")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"actualizadas": n,
	})
}
