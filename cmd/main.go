package main

import (
	"os"

	"backend/config"
	"backend/logger"
	"backend/routes"
)

func main() {
	logger.Init()
	config.InitDB()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	r := routes.SetupRouter()
	logger.Infow("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Errorw("server exited", "error", err)
		os.Exit(1)
	}
}
