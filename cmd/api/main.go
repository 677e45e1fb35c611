package main

import (
	"os"

	"github.com/alumnihub/portal-api/internal/pkg/logger"
	"github.com/alumnihub/portal-api/internal/server"
)

// @title Alumni Portal API
// @version 1.0
// @description Backend API for the alumni portal: registration and approval
// @description workflow, role-gated content management and the public site content.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

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

	logger.Info().Msg("Application finished gracefully.")
}
