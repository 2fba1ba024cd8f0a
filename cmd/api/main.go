package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/db"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// --- Database ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())
	logger.Info("mongo connected", slog.String("database", cfg.MongoDatabase))

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		return err
	}

	// --- External services ---
	verifier, kind, err := auth.New(ctx, cfg.FirebaseServiceAccount, cfg.JWTSecret)
	if err != nil {
		return err
	}
	if kind == "disabled" {
		logger.Warn("token verification disabled: set FIREBASE_SERVICE_ACCOUNT")
	} else {
		logger.Info("token verification enabled", slog.String("verifier", kind))
	}

	var intents services.IntentCreator
	if cfg.StripeSecret != "" {
		intents = services.NewStripeIntents(cfg.StripeSecret, nil)
	}
	payments := services.NewPaymentService(intents)
	if !payments.Enabled() {
		logger.Warn("payments disabled: STRIPE_SECRET is not set")
	}

	// --- Services & handlers ---
	h := handlers.NewHandler(
		client,
		services.NewAppointmentService(store.NewAppointmentRepository(cols.Appointments)),
		services.NewDoctorService(store.NewDoctorRepository(cols.Doctors)),
		services.NewUserService(store.NewUserRepository(cols.Users)),
		payments,
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, h, verifier, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	return nil
}

func newRouter(cfg *config.Config, h *handlers.Handler, verifier auth.Verifier, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = handlers.MaxBodyBytes
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(corsConfig(cfg)))

	handlers.RegisterRoutes(r, h, middleware.VerifyToken(verifier, logger))
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
		c.AllowCredentials = true
	}
	return c
}
