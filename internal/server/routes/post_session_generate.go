package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/internal/session"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GenerateSessionHandler replaces a session's graph with a freshly generated,
// laid out mind map. The graph is left untouched on failure.
func GenerateSessionHandler(c echo.Context) error {
	type generateSessionBody struct {
		SessionID string `param:"id" json:"-"`
		Prompt    string `json:"prompt"`
	}

	type generateSessionResponse struct {
		Message string            `json:"message"`
		Session *session.Snapshot `json:"session,omitempty"`
	}

	data := new(generateSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateSessionResponse{
			Message: "Invalid request body",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, generateSessionResponse{
			Message: "Session not found",
		})
	}

	app := c.(*middleware.AppContext).App

	ctx := c.Request().Context()
	snap, err := s.Generate(ctx, app.Generator, app.Layout, data.Prompt, app.AITimeout)
	if err != nil {
		status, msg := generationStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("[Session] Generation failed", "session", s.ID, "status", status, "err", err)
		}
		return c.JSON(status, generateSessionResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusOK, generateSessionResponse{
		Message: "Mind map generated",
		Session: &snap,
	})
}
