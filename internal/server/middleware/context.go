package middleware

import (
	"time"

	"github.com/aayushsoam1/cogni-mind/internal/session"
	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type AppUser struct {
	ID          string
	Role        string
	Permissions []string
}

// App carries the long-lived dependencies shared by every request.
//
// Keyfunc verifies bearer JWTs; when it is nil and MasterAPIKey is empty,
// authentication is disabled and every request acts as the anonymous user.
type App struct {
	AiClient     ai.GraphAIClient
	Generator    session.Generator
	Sessions     *session.Store
	Layout       graph.Layout
	Keyfunc      jwt.Keyfunc
	MasterAPIKey string
	AITimeout    time.Duration
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
