package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IT-Nick/quantum-quiz/internal/app"
)

const defaultConfigPath = "configs/values_examples.yaml"

func main() {
	log.Println("app starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, configPath)
	if err != nil {
		log.Fatalf("app.NewApp: %v", err)
	}

	if err := application.ListenAndServe(ctx); err != nil {
		log.Fatalf("app.ListenAndServe: %v", err)
	}
	log.Println("app stopped")
}
