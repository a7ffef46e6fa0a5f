package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/pkg/config"
	"github.com/quizforge/quizforge/pkg/errx"
	"github.com/quizforge/quizforge/pkg/logx"
)

func main() {
	cfg := config.Load()
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))

	logx.Info("starting quizforge document service")

	container := NewContainer(cfg)
	defer container.Cleanup()

	app := fiber.New(fiber.Config{
		AppName:               "QuizForge Document Service",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
		BodyLimit:             cfg.Server.BodyLimit,
		IdleTimeout:           120 * time.Second,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${ip} | ${reqHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	app.Get("/health", healthHandler(container))
	app.Get("/", infoHandler)

	container.PipelineHandlers.RegisterRoutes(app)
	logx.Info("pipeline routes registered")

	app.Use(notFoundHandler)

	startServer(app, cfg.Server.Port)
}

func healthHandler(container *Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := fiber.Map{
			"status":  "healthy",
			"service": "quizforge-document-service",
		}

		if c.QueryBool("check_storage", false) {
			if _, err := container.FileSystem.Exists(c.Context(), ".health-check"); err != nil {
				health["storage"] = "unhealthy"
				health["storage_error"] = err.Error()
				health["status"] = "degraded"
			} else {
				health["storage"] = "healthy"
			}
		}

		status := fiber.StatusOK
		if health["status"] == "degraded" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(health)
	}
}

func infoHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":     "QuizForge Document Service",
		"description": "Turns uploaded documents into multiple-choice questions",
		"endpoints": fiber.Map{
			"process": "POST /process-document",
			"health":  "GET /health",
		},
	})
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":      "Route not found",
		"code":       "NOT_FOUND",
		"path":       c.Path(),
		"method":     c.Method(),
		"request_id": c.Get("X-Request-ID"),
	})
}

// globalErrorHandler converts internal errors to standard HTTP responses.
func globalErrorHandler(c *fiber.Ctx, err error) error {
	logx.WithFields(logx.Fields{
		"path":       c.Path(),
		"method":     c.Method(),
		"ip":         c.IP(),
		"request_id": c.Get("X-Request-ID"),
	}).Errorf("request error: %v", err)

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error":      e.Message,
			"code":       "FIBER_ERROR",
			"status":     e.Code,
			"request_id": c.Get("X-Request-ID"),
		})
	}

	var appErr *errx.Error
	if errx.As(err, &appErr) {
		response := fiber.Map{
			"error":      appErr.Message,
			"code":       appErr.Code,
			"type":       string(appErr.Type),
			"status":     appErr.HTTPStatus,
			"request_id": c.Get("X-Request-ID"),
		}
		if len(appErr.Details) > 0 {
			response["details"] = appErr.Details
		}
		return c.Status(appErr.HTTPStatus).JSON(response)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":      "Internal Server Error",
		"type":       "INTERNAL",
		"code":       "INTERNAL_ERROR",
		"request_id": c.Get("X-Request-ID"),
	})
}

func startServer(app *fiber.App, port string) {
	go func() {
		logx.Infof("server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logx.Errorf("forced shutdown: %v", err)
	}
	logx.Info("server stopped")
}
