package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobpulse/internal/config"
	"jobpulse/internal/dataset"
	"jobpulse/internal/delivery/http/middleware"
	"jobpulse/internal/delivery/http/routes"
	"jobpulse/web"
)

const datasetLoadTimeout = 30 * time.Second

type App struct {
	Fiber *fiber.App

	table   *dataset.Table
	loadErr error
}

// Bootstrap loads the dataset once and assembles the HTTP app around it.
// A dataset LoadError is not fatal: the app comes up degraded, serving a
// blocking error page and 503 API responses, so the failure is visible
// where the user looks.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), datasetLoadTimeout)
	defer cancel()

	table, loadErr := dataset.Load(ctx, cfg.Dataset.Source)
	if loadErr != nil {
		logger.Error("dataset load failed, serving degraded",
			zap.String("source", cfg.Dataset.Source),
			zap.Error(loadErr),
		)
		table = nil
	} else {
		logger.Info("dataset loaded",
			zap.String("source", cfg.Dataset.Source),
			zap.Int("rows", table.Len()),
			zap.Int("skipped_rows", table.SkippedRows()),
		)
	}

	app := New(cfg, table, loadErr, logger)
	return app, func() error { return logger.Sync() }, nil
}

// New assembles the fiber app for an already-loaded (or failed) table.
// Split from Bootstrap so tests can inject a table directly.
func New(cfg config.Config, table *dataset.Table, loadErr error, logger *zap.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	a := &App{Fiber: f, table: table, loadErr: loadErr}

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(table, logger)
	registry.Register(f)

	f.Get("/", a.handlePage)

	return a
}

// handlePage serves the dashboard page, or a blocking error page when the
// dataset never loaded. No partial rendering in the failure case.
func (a *App) handlePage(c fiber.Ctx) error {
	if a.loadErr != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusServiceUnavailable).SendString(loadErrorPage)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(web.IndexHTML)
}

const loadErrorPage = `<!doctype html>
<html><head><title>JobPulse</title></head>
<body style="font-family:sans-serif;background:#f0f2f6;display:flex;align-items:center;justify-content:center;height:100vh;margin:0">
<div style="background:#fdecea;border-left:4px solid #d93025;padding:24px 32px;border-radius:8px;max-width:480px">
<h1 style="margin:0 0 8px;font-size:20px">Dataset unavailable</h1>
<p style="margin:0;color:#444">The job postings dataset could not be loaded. Check the server logs and the configured dataset path, then restart the service.</p>
</div>
</body></html>`

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
