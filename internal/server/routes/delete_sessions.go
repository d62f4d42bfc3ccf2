package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// DeleteSessionHandler closes a session. A generation still pending for it is
// discarded when it completes.
func DeleteSessionHandler(c echo.Context) error {
	type deleteSessionResponse struct {
		Message string `json:"message"`
	}

	data := new(sessionParam)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{
			Message: "Invalid request params",
		})
	}

	cc := c.(*middleware.AppContext)
	if cc.User == nil {
		return c.JSON(http.StatusUnauthorized, deleteSessionResponse{
			Message: "Unauthorized",
		})
	}

	if err := cc.App.Sessions.Delete(data.SessionID, cc.User.ID); err != nil {
		return c.JSON(http.StatusNotFound, deleteSessionResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, deleteSessionResponse{
		Message: "Session deleted",
	})
}
