package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portalapi/internal/config"
	"portalapi/internal/gate"
	handlers "portalapi/internal/http/handler"
	"portalapi/internal/http/middleware"
	"portalapi/internal/otel"
	"portalapi/internal/service"
	"portalapi/internal/session"
	"portalapi/internal/sheet"
	"portalapi/internal/state"
	"portalapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	if cfg.Sheet.APIURL == "" {
		log.Fatal("SHEET_API_URL is required")
	}

	shutdownTracing, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Redis keeps gate sessions; without it the password gates cannot work.
	sessions, err := session.NewStore(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer sessions.Close()

	gates := gate.NewService(
		cfg.Gate.TeachersPassword,
		cfg.Gate.AdminPassword,
		sessions,
		time.Duration(cfg.Gate.SessionTTLMin)*time.Minute,
	)

	// Object storage is optional; without it /admin/uploads reports 503.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	} else {
		log.Println("object storage not configured, admin uploads disabled")
	}

	sheets := sheet.NewClient(cfg.Sheet.APIURL)
	collections := state.New()
	portalSvc := service.NewPortalService(sheets, collections)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, portalSvc, gates, sessions, objStore)

	// Warm the local state; the portal serves 503 until the first fetch
	// succeeds, so a failure here is logged and retried via ?refresh=true.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 30*time.Second)
	if err := portalSvc.Refresh(warmCtx); err != nil {
		log.Printf("initial portal fetch failed: %v", err)
	}
	cancelWarm()

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
