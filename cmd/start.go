package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bucket-browser/core/config"
	"bucket-browser/core/loader"
	"bucket-browser/core/logger"
	"bucket-browser/core/middleware/rayid"
	"bucket-browser/core/storage"
	"bucket-browser/feature/browse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket browser server",
	Long:  `Starts the HTTP server and serves the configured bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		restoreStdLog := zap.RedirectStdLog(logg)
		defer restoreStdLog()

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if ok, err := store.BucketExists(cmd.Context(), cfg.Storage.Bucket); err != nil {
			logg.Warn("Could not check bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		} else if !ok {
			logg.Warn("Bucket does not exist, every listing will be empty", zap.String("bucket", cfg.Storage.Bucket))
		}

		format, err := cfg.Browse.SizeFormat()
		if err != nil {
			logg.Fatal("Invalid browse configuration", zap.Error(err))
		}

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(browse.NewFeature(store, cfg.Storage.Bucket, logg, format))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Panics fail the request, not the process
		app.Use(recover.New(recover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e any) {
				logger.WithRayID(logg, c).Error("Panic recovered",
					zap.Any("panic", e),
					zap.Stack("stack"),
				)
			},
		}))

		// 3. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Debug("Request finished", zap.Int("status", c.Response().StatusCode()))
			return err
		})

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("bucket", cfg.Storage.Bucket),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logg.Info("Shutting down server...", zap.Duration("timeout", cfg.Server.ShutdownTimeout()))
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Graceful shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
