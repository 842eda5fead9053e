package main

import (
	"os"

	"github.com/plantilla/apiestudiantes/internal/pkg/logger"
	"github.com/plantilla/apiestudiantes/internal/server"
)

// @title API Estudiantes
// @version 1.0
// @description Administrative API for managing courses and their topics

// @host localhost:8080
// @BasePath /

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
