package main

import (
	"context"
	"log"

	"note-sharing-be/internal/bootstrap"
	"note-sharing-be/internal/config"
	"note-sharing-be/internal/server"
	"note-sharing-be/internal/tracer"
	"note-sharing-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	if err := container.ConsumerService.Start(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
