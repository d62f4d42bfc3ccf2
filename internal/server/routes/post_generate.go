package routes

import (
	"context"
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GenerateHandler turns a prompt into a raw mind map payload without touching
// any session. Errors are reported as {"error": "..."}.
func GenerateHandler(c echo.Context) error {
	type generateBody struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	data := new(generateBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Prompt must not be empty"})
	}

	app := c.(*middleware.AppContext).App

	// A client that goes away does not abort the upstream call.
	ctx := context.WithoutCancel(c.Request().Context())
	if app.AITimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.AITimeout)
		defer cancel()
	}

	payload, err := app.Generator.Generate(ctx, data.Prompt)
	if err != nil {
		status, msg := generationStatus(err)
		logger.Error("[Generate] Stateless generation failed", "status", status, "err", err)
		return c.JSON(status, map[string]string{"error": msg})
	}

	return c.JSON(http.StatusOK, payload)
}
