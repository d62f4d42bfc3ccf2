package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/internal/session"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CreateSessionHandler opens a new editing session seeded with the starter graph.
func CreateSessionHandler(c echo.Context) error {
	type createSessionResponse struct {
		Message string            `json:"message"`
		Session *session.Snapshot `json:"session,omitempty"`
	}

	cc := c.(*middleware.AppContext)
	if cc.User == nil {
		return c.JSON(http.StatusUnauthorized, createSessionResponse{
			Message: "Unauthorized",
		})
	}

	s, err := cc.App.Sessions.Create(cc.User.ID)
	if err != nil {
		logger.Error("[Session] Failed to create session", "err", err)
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	snap := s.Snapshot()
	return c.JSON(http.StatusCreated, createSessionResponse{
		Message: "Session created",
		Session: &snap,
	})
}
