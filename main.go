package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("nutrition-calc-api: ")
	log.SetFlags(0)

	// .env is optional — real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("[main] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[main] invalid config: %v", err)
	}

	h := &Handler{cfg: cfg}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware(cfg))
	h.registerRoutes(router)

	log.Printf("[main] listening on %s (maintenance_only=%v)", cfg.Server.Addr, cfg.Calculator.MaintenanceOnly)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("[main] server exited: %v", err)
	}
}
