package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/partshub/catalog-service/internal/models"
)

type UsersRepo interface {
	IRepository[models.User]
	Create(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLogin(ctx context.Context, id models.ObjectID) error
}

type usersRepo struct {
	baseRepo[models.User]
}

func NewUsersRepo(ctx context.Context, dbc *mongo.Database) (UsersRepo, error) {
	r := &usersRepo{
		baseRepo: newBaseRepo[models.User](dbc),
	}

	// accounts are keyed by email
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}
	return r, nil
}

func (r *usersRepo) Create(ctx context.Context, user models.User) (string, error) {
	user.Email = strings.ToLower(user.Email)
	id, err := r.Insert(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return "", models.ErrDuplicateEmail
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *usersRepo) TouchLogin(ctx context.Context, id models.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$currentDate": bson.M{"last_login_at": true}},
	)
	if err != nil {
		return fmt.Errorf("touch login: %w", err)
	}
	return nil
}
