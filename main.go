package main

import (
	"github.com/Shiva-026/Samvidhaan/config"
	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/routes"
	"github.com/Shiva-026/Samvidhaan/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Migrate write-side tables only; quiz content tables are pre-seeded.
	db := config.InitDatabase(
		&models.User{},
		&models.GameScore{},
		&models.LearningProgress{},
		&models.PreambleScore{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
