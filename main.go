package main

import (
	"os"
	"os/signal"
	"syscall"

	"pocketsense-backend/cmd/config"
	migration "pocketsense-backend/cmd/database/migrate"
	"pocketsense-backend/internal/utils"
	"pocketsense-backend/internal/utils/logger"
)

func main() {
	utils.LoadConfig()
	log := logger.GetLogger()
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalw("Failed to migrate database", "error", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalw("Failed to build app", "error", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Errorw("Server shutdown failed", "error", err)
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Infow("Starting server", "port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalw("Server stopped", "error", err)
	}
}
