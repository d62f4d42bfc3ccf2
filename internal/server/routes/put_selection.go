package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SelectNodeHandler sets the selected node. An empty node_id clears it.
func SelectNodeHandler(c echo.Context) error {
	type selectBody struct {
		SessionID string `param:"id" json:"-"`
		NodeID    string `json:"node_id"`
	}

	type selectResponse struct {
		Message        string `json:"message"`
		SelectedNodeID string `json:"selected_node_id"`
	}

	data := new(selectBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, selectResponse{
			Message: "Invalid request body",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, selectResponse{
			Message: "Session not found",
		})
	}

	if err := s.Select(data.NodeID); err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, selectResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusOK, selectResponse{
		Message:        "Selection updated",
		SelectedNodeID: data.NodeID,
	})
}
