package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicle-rental-backend/internal/agency"
	grpcapi "vehicle-rental-backend/internal/api/grpc"
	httpapi "vehicle-rental-backend/internal/api/http"
	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/jobs"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/scheduler"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/seed"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Session configuration", "ttl", cfg.SessionTTL().String(), "cookie", cfg.Session.CookieName, "seed_sample_data", cfg.Agency.SeedSampleData)

	// Initialize Sessions
	tokenManager := security.NewTokenManager(cfg.Session.Secret)
	sessions, err := session.NewManager(tokenManager, cfg.SessionTTL(), agencyFactory(cfg.Agency.SeedSampleData))
	if err != nil {
		logger.Error("Failed to initialize session manager", "error", err)
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Initialize Services
	svcs := httpapi.Services{
		Fleet:     service.NewFleetService(),
		Customers: service.NewCustomerService(),
		Rentals:   service.NewRentalService(cfg.Loyalty.PointsPerDay),
		Reports:   service.NewReportService(),
	}

	// Set up HTTP server
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(svcs, sessions, cfg.Session.CookieName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Set up gRPC health server
	var grpcServer *grpcapi.Server
	if addr := cfg.GetGRPCAddress(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", addr)
			log.Fatalf("Failed to listen: %v", err)
		}
		grpcServer = grpcapi.NewServer()
		go func() {
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("gRPC server error", "error", err)
			}
		}()
	}

	// Start scheduled jobs
	sched := scheduler.NewScheduler(jobs.NewJobRunner(sessions, cfg))
	sched.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	if grpcServer != nil {
		grpcServer.SetServing(true)
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		logger.Error("HTTP server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if grpcServer != nil {
		grpcServer.SetServing(false)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	sched.Stop()
	logger.Info("Server stopped")
}

// agencyFactory builds new session agencies, seeded with the sample fleet when
// enabled.
func agencyFactory(seedSampleData bool) session.AgencyFactory {
	if !seedSampleData {
		return agency.New
	}
	return func() *agency.RentalAgency {
		a, err := seed.NewSampleAgency()
		if err != nil {
			logger.Error("Failed to seed session agency", "error", err)
			return agency.New()
		}
		return a
	}
}
