package main

import (
	"go.uber.org/zap"

	"efmode-api-io/api/configs"
	"efmode-api-io/api/logger"
	"efmode-api-io/api/routes"
	"efmode-api-io/api/store"
)

func main() {
	// Initialize database connection
	client := configs.ConnectDB()
	defer configs.DisconnectDB(client)

	router := routes.InitRoute(store.NewMongoStore(configs.GetDatabase(client)))

	port := configs.LoadEnvOr("PORT", "8000")
	logger.GetLogger().Info("EFMODE API listening", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.GetLogger().Fatal("server exited", zap.Error(err))
	}
}
