package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/pkg/common"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AddNodeHandler drops a blank node at a random spot of the viewport.
func AddNodeHandler(c echo.Context) error {
	type addNodeResponse struct {
		Message string       `json:"message"`
		Node    *common.Node `json:"node,omitempty"`
	}

	data := new(sessionParam)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, addNodeResponse{
			Message: "Invalid request params",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, addNodeResponse{
			Message: "Session not found",
		})
	}

	node, err := s.AddBlankNode()
	if err != nil {
		status, msg := editStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("[Session] Failed to add node", "session", s.ID, "err", err)
		}
		return c.JSON(status, addNodeResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusCreated, addNodeResponse{
		Message: "Node added",
		Node:    &node,
	})
}
