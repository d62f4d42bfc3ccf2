package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/labstack/echo/v4"
)

// ConnectNodesHandler adds an edge between two nodes. Neither end is checked
// for existence.
func ConnectNodesHandler(c echo.Context) error {
	type connectBody struct {
		SessionID string `param:"id" json:"-"`
		Source    string `json:"source" validate:"required"`
		Target    string `json:"target" validate:"required"`
		Relation  string `json:"relation" validate:"omitempty,max=64"`
	}

	type connectResponse struct {
		Message string       `json:"message"`
		Edge    *common.Edge `json:"edge,omitempty"`
	}

	data := new(connectBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, connectResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, connectResponse{
			Message: "Invalid request body",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, connectResponse{
			Message: "Session not found",
		})
	}

	edge, err := s.Connect(data.Source, data.Target, data.Relation)
	if err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, connectResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusCreated, connectResponse{
		Message: "Edge added",
		Edge:    &edge,
	})
}
