package main

import (
	"log"

	"glucose-advisor/config"
	"glucose-advisor/di"
)

func main() {
	cfg := config.Load()

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	serveErr := container.GlucoseHttpServer.Start()
	if err := container.Close(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if serveErr != nil {
		log.Fatalf("Server error: %v", serveErr)
	}
	log.Println("Server stopped")
}
