package handler

import (
	"net/http"

	"github.com/haleview/clinic-api/internal/server"
	"github.com/labstack/echo/v4"
)

// WelcomeHandler serves the API root.
type WelcomeHandler struct {
	Handler
}

func NewWelcomeHandler(s *server.Server) *WelcomeHandler {
	return &WelcomeHandler{
		Handler: NewHandler(s),
	}
}

// Welcome returns a short greeting so a bare GET / confirms the
// service is up and points callers at the docs UI.
func (h *WelcomeHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Clinic API",
		"docs":    "/docs",
	})
}
