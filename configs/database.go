package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"efmode-api-io/api/logger"
)

// ConnectDB opens and pings the MongoDB deployment named by DATABASE_URL.
// The returned client is handed to the store at startup; there is no
// package-level client instance.
func ConnectDB() *mongo.Client {
	client, err := mongo.NewClient(options.Client().ApplyURI(LoadEnvFor("DATABASE_URL")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// try to ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	logger.GetLogger().Info("Connected to MongoDB")
	return client
}

// DisconnectDB closes the client opened by ConnectDB. Deferred in main.
func DisconnectDB(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.GetLogger().Error("Error disconnecting from MongoDB", zap.Error(err))
	}
}

// GetDatabase resolves the application database on the given client.
func GetDatabase(client *mongo.Client) *mongo.Database {
	return client.Database(LoadEnvOr("DATABASE_NAME", "efmode"))
}
