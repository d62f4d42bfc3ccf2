package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DeleteNodeHandler removes a node and every edge touching it. Deleting an
// unknown node is not an error; only its dangling edges are removed.
func DeleteNodeHandler(c echo.Context) error {
	type deleteNodeData struct {
		SessionID string `param:"id"`
		NodeID    string `param:"node_id"`
	}

	type deleteNodeResponse struct {
		Message          string `json:"message"`
		Removed          bool   `json:"removed"`
		SelectionCleared bool   `json:"selection_cleared"`
	}

	data := new(deleteNodeData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteNodeResponse{
			Message: "Invalid request params",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, deleteNodeResponse{
			Message: "Session not found",
		})
	}

	res, err := s.DeleteNode(data.NodeID)
	if err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, deleteNodeResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusOK, deleteNodeResponse{
		Message:          "Node deleted",
		Removed:          res.Removed,
		SelectionCleared: res.SelectionCleared,
	})
}
