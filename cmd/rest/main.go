package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinic-assistant-be/internal/bootstrap"
	"clinic-assistant-be/internal/config"
	"clinic-assistant-be/internal/model"
	"clinic-assistant-be/internal/server"
	"clinic-assistant-be/internal/tracer"
	"clinic-assistant-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Databases
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Warning: could not ensure pgvector extension: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Snippet{}); err != nil {
		log.Panicf("Unable to migrate snippet table: %v", err)
	}

	mongoCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	mongoDb := mongoClient.Database(cfg.Mongo.Database)

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, mongoDb, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
