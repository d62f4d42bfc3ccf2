package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/internal/session"
	"github.com/aayushsoam1/cogni-mind/internal/util"
	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// New builds the echo instance serving app. limiter may be nil.
func New(app *mid.App, limiter *mid.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	RegisterRoutes(e, limiter)

	return e
}

func Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiClient, err := util.NewAIClientFromEnv()
	if err != nil {
		logger.Fatal("Failed to create AI client", "err", err)
	}

	gen, err := graph.NewGenerator(graph.NewGeneratorParams{
		Client:      aiClient,
		Temperature: util.GetEnvNumeric("AI_TEMPERATURE", 0),
		RepairJSON:  util.GetEnvBool("AI_REPAIR_JSON", false),
		JSONMode:    util.GetEnvBool("AI_JSON_MODE", false),
	})
	if err != nil {
		logger.Fatal("Failed to create generator", "err", err)
	}

	layout, ok := graph.LayoutByName(util.GetEnv("LAYOUT_VARIANT"))
	if !ok {
		logger.Fatal("Unknown layout variant", "variant", util.GetEnv("LAYOUT_VARIANT"))
	}

	var kf keyfunc.Keyfunc
	if authURL := util.GetEnv("AUTH_URL"); authURL != "" {
		kf, err = keyfunc.NewDefaultCtx(ctx, []string{authURL + "/jwks"})
		if err != nil {
			logger.Fatal("Failed to load jwks keys", "err", err)
		}
	}

	sessions := session.NewStore(util.GetEnvDuration("SESSION_TTL_MINUTES", time.Minute, 2*time.Hour))
	go sessions.RunJanitor(ctx, time.Minute)

	app := &mid.App{
		AiClient:     aiClient,
		Generator:    gen,
		Sessions:     sessions,
		Layout:       layout,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
		AITimeout:    util.GetEnvDuration("AI_TIMEOUT_SECONDS", time.Second, 60*time.Second),
	}
	if kf != nil {
		app.Keyfunc = kf.Keyfunc
	} else if app.MasterAPIKey == "" {
		logger.Warn("Authentication disabled, all requests act as the anonymous user")
	}

	var limiter *mid.RateLimiter
	if rps := util.GetEnvNumeric("RATE_LIMIT_RPS", 1); rps > 0 {
		limiter = mid.NewRateLimiter(rps, int(util.GetEnvNumeric("RATE_LIMIT_BURST", 3)))
		go limiter.RunJanitor(ctx, time.Minute)
	}

	warmUp(ctx, aiClient)

	e := New(app, limiter)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// warmUp loads the chat model ahead of the first request. Failures are logged
// only; the first generation reports them again if they persist.
func warmUp(ctx context.Context, client ai.GraphAIClient) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.LoadModel(ctx); err != nil {
		logger.Warn("Failed to preload chat model", "err", err)
	}
}
