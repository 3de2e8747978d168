package main

import (
	"context"
	"log"

	"crystallab/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config (POSTGRES_DSN required).
// 2) Connect to the shared report registry.
// 3) Sweep expired idempotency records on an interval.
func main() {
	log.Println("crystallab worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("crystallab worker stopped with error: %v", err)
	}
}
