package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/cache"
	grpcAdapter "github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/grpc"
	httpAdapter "github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/http"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/memory"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/mock"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/config"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/fleet"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/simulation"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/tlsconfig"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	log.Info().Msg("starting water service")

	// Load initial state
	var seed *config.Seed
	if cfg.SeedFile != "" {
		s, err := config.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seed_file", cfg.SeedFile).Msg("failed to load seed file")
		}
		seed = s
		log.Info().Str("seed_file", cfg.SeedFile).Msg("loaded seed file")
	}

	now := time.Now()
	sensors, err := seed.SensorRecords(now)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid sensor seed")
	}

	// Initialize simulation
	randomSeed := cfg.RandomSeed
	if randomSeed == 0 {
		randomSeed = now.UnixNano()
	}
	engine := simulation.NewEngine(mock.NewRandomSource(randomSeed))
	log.Info().Int64("random_seed", randomSeed).Int("sensors", len(sensors)).Msg("initialized simulation")

	mon := monitor.New(engine, sensors, seed.SystemStatus(now), monitor.WithInterval(cfg.TickInterval))

	// Initialize auth
	if cfg.JWTSecret == config.DevJWTSecret {
		log.Warn().Msg("JWT_SECRET not set, signing tokens with the development secret")
	}
	authSvc := auth.NewService(cache.NewSessionStore(), auth.NewTokenService(cfg.JWTSecret), auth.NewBcryptHasher(bcrypt.DefaultCost), cfg.SessionTTL)
	operator := auth.DefaultUser
	operator.Email = cfg.AuthEmail
	if err := authSvc.Register(operator, cfg.AuthPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to register operator account")
	}

	// Initialize fleet
	devices := fleet.NewService(memory.NewDeviceRepository(seed.DeviceList()...), cfg.RebootDelay)
	defer devices.Close()

	// Configure TLS if certificates are provided
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(grpcAdapter.UnaryAuthInterceptor(authSvc)),
		grpc.ChainStreamInterceptor(grpcAdapter.StreamAuthInterceptor(authSvc)),
	}
	if cfg.TLSEnabled() {
		files := tlsconfig.Files{Cert: cfg.TLSCert, Key: cfg.TLSKey, CA: cfg.TLSCA}
		tlsCfg, err := files.Server()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	pb.RegisterWaterServiceServer(grpcServer, grpcAdapter.NewWaterServiceHandler(authSvc, mon, devices))

	// Enable reflection for debugging (grpcurl)
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}
	log.Info().Str("port", cfg.GRPCPort).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve gRPC")
		}
	}()

	// Create HTTP server for health checks and dashboard WebSockets
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           httpAdapter.NewRouter(mon, authSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to serve HTTP")
		}
	}()

	// Start periodic updates
	mon.Start()
	logSummary(mon)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown; stopping the monitor first ends every snapshot stream
	mon.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown failed")
	}
	grpcServer.GracefulStop()

	log.Info().Msg("server stopped")
}

func logSummary(mon *monitor.Monitor) {
	summary := mon.Summary()
	event := log.Info().
		Int("good", summary.Good).
		Int("moderate", summary.Moderate).
		Int("poor", summary.Poor).
		Str("overall", string(summary.Overall))
	if alert, ok := mon.Alert(); ok {
		event = event.Str("alert", alert.Message)
	}
	event.Msg(summary.Message())

	for _, s := range mon.Snapshot().Sensors {
		if s.Reading.Status == domain.StatusPoor {
			log.Warn().Str("sensor_id", s.ID).Float64("value", s.Reading.Value).Msg("sensor starts in poor range")
		}
	}
}
