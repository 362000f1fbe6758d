package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/partshub/catalog-service/internal/config"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewConnection(ctx context.Context, cfg *config.Config) (*DB, error) {
	clientOptions := options.Client().
		SetAppName("catalog-service").
		ApplyURI(cfg.Database.URI).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(cfg.Database.Database),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) GetDatabase() *mongo.Database {
	return db.Database
}
