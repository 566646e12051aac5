package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"devonn-assistant-be/internal/bootstrap"
	"devonn-assistant-be/internal/config"
	"devonn-assistant-be/internal/server"
	"devonn-assistant-be/internal/tracer"
	"devonn-assistant-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()

	// 1. Load Configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Database (optional, enables turn analytics)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	} else {
		log.Println("Info: DB_CONNECTION_STRING not set, turn analytics disabled")
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)

	// 4. Start Background Services
	log.Println("Background: Starting Consumer Service...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server until a signal arrives
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
		stop()
	}()
	<-ctx.Done()

	log.Println("Shutting down...")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	container.Close()
	if gormDB != nil {
		if err := database.Close(gormDB); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}
	if err := shutdownTracer(context.Background()); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
}
