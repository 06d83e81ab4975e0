package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/snowflake-service/internal/config"
	"github.com/weiawesome/snowflake-service/internal/generator"
	idgrpc "github.com/weiawesome/snowflake-service/internal/grpc"
	"github.com/weiawesome/snowflake-service/internal/handler"
	"github.com/weiawesome/snowflake-service/internal/service"
	pkglog "github.com/weiawesome/snowflake-service/pkg/log"
	"github.com/weiawesome/snowflake-service/pkg/middleware"
	"github.com/weiawesome/snowflake-service/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "snowflake-service",
		NodeID:      cfg.Snowflake.NodeID,
	})
	logger := pkglog.L()

	logger.Info().Msg("starting snowflake-service")

	// Snowflake generator; an invalid layout or node id is fatal.
	snowflake, err := generator.NewSnowflake(cfg.Snowflake.Generator())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create snowflake generator")
	}
	layout := snowflake.Layout()
	logger.Info().
		Int64("epoch", cfg.Snowflake.Epoch).
		Int("timestamp_bits", layout.TimestampBits).
		Int("node_bits", layout.NodeBits).
		Int("sequence_bits", layout.SequenceBits).
		Msg("snowflake generator initialized")

	nanoidGen, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create nanoid generator")
	}

	cuid2Gen, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create cuid2 generator")
	}

	idService := service.NewIDService(map[string]generator.Generator{
		service.SchemeSnowflake: snowflake,
		service.SchemeUUID:      generator.NewUUIDGenerator(),
		service.SchemeULID:      generator.NewULIDGenerator(),
		service.SchemeKSUID:     generator.NewKSUIDGenerator(),
		service.SchemeNanoID:    nanoidGen,
		service.SchemeCUID2:     cuid2Gen,
	})
	logger.Info().Strs("schemes", idService.Schemes()).Msg("id schemes registered")

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := idgrpc.StartGRPCServer(grpcAddr, idService, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Setup Gin router
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	r.Use(middleware.ErrorHandler(middleware.ErrorOptions{ExposeDetails: cfg.Errors.ExposeDetails}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	handler.NewHandler(idService).RegisterRoutes(r)

	httpAddr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	httpServer := &http.Server{Addr: httpAddr, Handler: r}
	go func() {
		logger.Info().Str("addr", httpAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down snowflake-service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	grpcServer.GracefulStop()

	logger.Info().Msg("snowflake-service stopped")
}
