package routes

import (
	"net/http"

	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/pkg/ai"

	"github.com/labstack/echo/v4"
)

// GetMetricsHandler reports the completion client's accumulated usage and the
// number of open sessions. ?reset=true clears the usage counters afterwards.
func GetMetricsHandler(c echo.Context) error {
	type getMetricsData struct {
		Reset bool `query:"reset"`
	}

	type getMetricsResponse struct {
		Message  string          `json:"message"`
		Model    ai.ModelMetrics `json:"model"`
		Sessions int             `json:"sessions"`
	}

	data := new(getMetricsData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getMetricsResponse{
			Message: "Invalid request params",
		})
	}

	app := c.(*middleware.AppContext).App
	metrics := app.AiClient.GetMetrics()
	if data.Reset {
		app.AiClient.ResetMetrics()
	}

	return c.JSON(http.StatusOK, getMetricsResponse{
		Message:  "Metrics retrieved",
		Model:    metrics,
		Sessions: app.Sessions.Len(),
	})
}
