package main

import (
	"log"

	_ "todopro/docs"
	"todopro/internal/config"
	"todopro/internal/server"
)

// @title           TodoPro API
// @version         1.0
// @description     REST API for the TodoPro task manager.

// @host      localhost:8080
// @BasePath  /api

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
