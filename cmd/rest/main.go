package main

import (
	"context"
	"log"

	"content-discovery-be/internal/bootstrap"
	"content-discovery-be/internal/config"
	"content-discovery-be/internal/server"
	"content-discovery-be/internal/tracer"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Start the interaction consumer
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Unable to start interaction consumer: %v", err)
	}

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
