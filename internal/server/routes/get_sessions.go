package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/session"

	"github.com/labstack/echo/v4"
)

// GetSessionHandler returns the current graph and selection of a session.
func GetSessionHandler(c echo.Context) error {
	type getSessionResponse struct {
		Message string            `json:"message"`
		Session *session.Snapshot `json:"session,omitempty"`
	}

	data := new(sessionParam)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionResponse{
			Message: "Invalid request params",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, getSessionResponse{
			Message: "Session not found",
		})
	}

	snap := s.Snapshot()
	return c.JSON(http.StatusOK, getSessionResponse{
		Message: "Session retrieved",
		Session: &snap,
	})
}
