package main

import (
	"os"

	"github.com/selin/acadcore/internal/pkg/logger"
	"github.com/selin/acadcore/internal/server"
)

// @title AcadCore API
// @version 1.0
// @description Academic records backend: semesters, courses, offerings, enrollments and grading.

// @contact.name API Support
// @contact.email support@acadcore.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
