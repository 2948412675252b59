package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/parsegasht/passenger/internal/app"
	"github.com/parsegasht/passenger/internal/config"
)

func main() {
	// .env нужен только локально
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
