package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/labstack/echo/v4"
)

// EditNodeHandler replaces a node's label and, if given, its description.
// The label key must be present but may be empty.
func EditNodeHandler(c echo.Context) error {
	type editNodeBody struct {
		SessionID   string  `param:"id" json:"-"`
		NodeID      string  `param:"node_id" json:"-"`
		Label       *string `json:"label" validate:"omitempty,max=200"`
		Description *string `json:"description" validate:"omitempty,max=2000"`
	}

	type editNodeResponse struct {
		Message string       `json:"message"`
		Node    *common.Node `json:"node,omitempty"`
	}

	data := new(editNodeBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editNodeResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil || data.Label == nil {
		return c.JSON(http.StatusBadRequest, editNodeResponse{
			Message: "Invalid request body",
		})
	}

	s, err := lookupSession(c, data.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, editNodeResponse{
			Message: "Session not found",
		})
	}

	node, err := s.UpdateNode(data.NodeID, *data.Label, data.Description)
	if err != nil {
		status, msg := editStatus(err)
		return c.JSON(status, editNodeResponse{
			Message: msg,
		})
	}

	return c.JSON(http.StatusOK, editNodeResponse{
		Message: "Node updated",
		Node:    &node,
	})
}
