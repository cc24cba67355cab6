package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/export"
	"github.com/catalogmapper/catalog-mapper/internal/mappings"
	"github.com/catalogmapper/catalog-mapper/internal/marketplaces"
	repo "github.com/catalogmapper/catalog-mapper/internal/repository"
	svc "github.com/catalogmapper/catalog-mapper/internal/server"
	"github.com/catalogmapper/catalog-mapper/internal/sessions"
	"github.com/catalogmapper/catalog-mapper/internal/suggest"
	"github.com/catalogmapper/catalog-mapper/internal/suggest/openai"
)

func main() {
	// Structured logger without time/level noise; messages carry event names.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	marketsRepo := repo.NewMarketplaceRepository(entc, logger)
	fieldsRepo := repo.NewFieldRepository(entc, logger)
	sessionsRepo := repo.NewSessionRepository(entc, logger)
	rowsRepo := repo.NewRowRepository(entc, logger)
	mappingsRepo := repo.NewMappingRepository(entc, logger)
	generatedRepo := repo.NewGeneratedFileRepository(entc, logger)

	// With no API key the suggestion engine falls back to the built-in
	// lexical matcher; everything else behaves the same.
	var suggester suggest.Suggester
	if cfg.LLM.APIKey != "" {
		suggester = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("suggestion engine ready", "backend", "openai", "model", cfg.LLM.Model)
	} else {
		suggester = suggest.NewRuleMatcher()
		logger.Info("suggestion engine ready", "backend", "rules")
	}
	engine := suggest.NewService(suggester, logger)

	sessionsSvc := sessions.NewService(sessionsRepo, rowsRepo, marketsRepo, cfg.Upload.MaxBytes, logger)
	marketsSvc := marketplaces.NewService(marketsRepo, fieldsRepo, cfg.Upload.MaxBytes, logger)
	mappingsSvc := mappings.NewService(sessionsRepo, mappingsRepo, fieldsRepo, marketsRepo, engine, logger)
	exportSvc := export.NewService(sessionsRepo, rowsRepo, mappingsRepo, fieldsRepo, generatedRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.LoggingInterceptor(logger)),
	)
	v1.RegisterSessionsServiceServer(grpcServer, svc.NewSessionsService(sessionsSvc, logger))
	v1.RegisterMarketplacesServiceServer(grpcServer, svc.NewMarketplacesService(marketsSvc, logger))
	v1.RegisterMappingsServiceServer(grpcServer, svc.NewMappingsService(mappingsSvc, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exportSvc, logger))

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc server listening", "addr", addr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
