package routes

import (
	"errors"
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/internal/session"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"

	"github.com/labstack/echo/v4"
)

const generateFailedMessage = "Failed to generate mind map"

// sessionParam binds the session id of body-less session routes.
type sessionParam struct {
	SessionID string `param:"id" json:"-"`
}

// lookupSession resolves the session of the current user.
func lookupSession(c echo.Context, id string) (*session.Session, error) {
	cc := c.(*middleware.AppContext)
	if cc.User == nil {
		return nil, session.ErrNotFound
	}
	return cc.App.Sessions.Get(id, cc.User.ID)
}

// generationStatus maps a failed generation to an HTTP status and a message
// that is safe to show to end users. Upstream failures all collapse into one
// generic notice.
func generationStatus(err error) (int, string) {
	switch kind := graph.KindOf(err); {
	case kind == graph.KindInvalidInput:
		return http.StatusBadRequest, "Prompt must not be empty"
	case kind == graph.KindAlreadyInProgress:
		return http.StatusConflict, "A mind map is already being generated"
	case kind.IsUpstream():
		return http.StatusBadGateway, generateFailedMessage
	case errors.Is(err, session.ErrClosed):
		return http.StatusNotFound, "Session not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// editStatus maps a failed session edit to an HTTP status and message.
func editStatus(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNodeNotFound):
		return http.StatusNotFound, "Node not found"
	case errors.Is(err, session.ErrClosed), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "Session not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
