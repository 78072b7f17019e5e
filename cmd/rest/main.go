package main

import (
	"context"
	"log"

	"penai-be/internal/bootstrap"
	"penai-be/internal/config"
	"penai-be/internal/server"
	"penai-be/internal/tracer"
	"penai-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer("penai-backend", cfg.App.Environment)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database (optional - assistant still answers without it)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	} else {
		log.Println("No DB_CONNECTION_STRING set, running without family context and interaction logging")
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	if container.ConsumerService != nil {
		go func() {
			log.Println("Background: Starting Consumer Service...")
			if err := container.ConsumerService.Consume(context.Background()); err != nil {
				log.Printf("Background Consumer Error: %v", err)
			}
		}()
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
