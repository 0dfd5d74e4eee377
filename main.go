package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/db"
	h "github.com/co2-watch/site/handlers"
	"github.com/co2-watch/site/vehicle"
	"github.com/co2-watch/site/watcher"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $CO2_CONFIG or dashboard.yaml)")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Load the dataset; a missing or malformed source is fatal
	svc, err := dashboard.NewService(func() (*vehicle.Dataset, error) {
		return vehicle.Open(config.DataSource, config.DataTable)
	}, config.ViewCacheTTL)
	if err != nil {
		log.Fatalf("error loading dataset: %v", err)
	}
	defer db.Close()

	watch := config.DataWatch && !vehicle.IsSQLiteSource(config.DataSource)
	h.Init(svc, watch)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hot reload of the CSV source
	if watch {
		w := watcher.New(config.DataSource, func() { _ = svc.Reload() }).WithDebounce(config.DataDebounce)
		go func() {
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[watcher] Stopped: %v", err)
			}
		}()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:      h.CustomErrorHandler,
		ReadTimeout:       config.ServerReadTimeout,
		WriteTimeout:      config.ServerWriteTimeout,
		EnablePrintRoutes: config.ServerDebug,
	})

	app.Use(h.RateLimiter())
	app.Use(logger.New())
	h.Register(app)

	go func() {
		<-ctx.Done()
		log.Printf("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down: %v", err)
		}
	}()

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	if err := app.Listen(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
