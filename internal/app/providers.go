package app

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/repo/mongodb"
)

func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbc, err := mongodb.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dbc.Close(ctx)
		},
	})

	return dbc, nil
}

func newDatabase(dbc *mongodb.DB) *mongo.Database {
	return dbc.GetDatabase()
}

func newPartsRepo(db *mongo.Database) mongodb.PartsRepo {
	return mongodb.NewPartsRepo(db)
}

func newContactsRepo(db *mongo.Database) mongodb.ContactsRepo {
	return mongodb.NewContactsRepo(db)
}

// newUsersRepo creates the users repository and ensures its indexes exist.
func newUsersRepo(db *mongo.Database) (mongodb.UsersRepo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return mongodb.NewUsersRepo(ctx, db)
}
