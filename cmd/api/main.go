package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-catalog/internal/cache"
	"fitness-catalog/internal/config"
	"fitness-catalog/internal/database"
	"fitness-catalog/internal/handlers"
	"fitness-catalog/internal/logger"
	"fitness-catalog/internal/middleware"
	"fitness-catalog/internal/repository"
	"fitness-catalog/internal/routes"
	"fitness-catalog/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run arma y sirve la API; devuelve el código de salida después de ejecutar los defers
func run() int {
	cfg := config.LoadConfig()

	zl, err := logger.New(logger.Config{Level: cfg.LogLevel, Production: cfg.IsProduction()})
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		zl.Error("failed to connect to mongo", zap.Error(err))
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Disconnect(ctx, client); err != nil {
			zl.Error("failed to disconnect mongo", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDB)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		zl.Warn("failed to ensure indexes", zap.Error(err))
	}
	cancel()

	productRepo := repository.NewProductRepository(db.Collection(database.ProductsCollection))
	statusRepo := repository.NewStatusRepository(db.Collection(database.StatusChecksCollection))

	catalog := service.NewCatalogService(productRepo, zl.Named("catalog"))
	if cfg.CacheTTL > 0 {
		catalog = service.NewCachedCatalogService(catalog, cache.New(cfg.CacheTTL))
		zl.Info("product cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}
	statusSvc := service.NewStatusService(statusRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(zl.Named("http")),
		middleware.Recovery(zl),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Timeout(cfg.RequestTimeout),
	)

	routes.RegisterRoutes(router,
		handlers.NewProductHandler(catalog, zl.Named("products")),
		handlers.NewStatusHandler(statusSvc, zl.Named("status")),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := serve(ctx, srv, cfg.ShutdownTimeout, zl); err != nil {
		zl.Error("server failed", zap.Error(err))
		return 1
	}
	return 0
}

// serve atiende hasta que ctx se cancela o el listener falla, y luego apaga el servidor
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, zl *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
