package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/partshub/catalog-service/internal/models"
)

// keep the baseRepo implementation in sync with IRepository interface
var _ IRepository[IEntity] = (*baseRepo[IEntity])(nil)

type IEntity interface {
	CollectionName() string
	GetUpdates() any
	GetObjectID() models.ObjectID
}

type PaginateWithTotal[E any] struct {
	Total int64
	Data  []E
}

type IRepository[E IEntity] interface {
	Insert(ctx context.Context, entity E, opts ...*options.InsertOneOptions) (string, error)
	InsertMany(ctx context.Context, entities []E, opts ...*options.InsertManyOptions) ([]string, error)
	Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]E, error)
	FindByID(ctx context.Context, docID string) (*E, error)
	FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*E, error)
	UpdateOne(ctx context.Context, filter bson.M, entity E, opts ...*options.FindOneAndUpdateOptions) (*E, error)
	UpdateMany(ctx context.Context, filter bson.M, data any, opts ...*options.UpdateOptions) error
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
	Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error)
	PaginateWithTotal(ctx context.Context, filter bson.M, limit int64, skip int64, opts ...*options.FindOptions) (*PaginateWithTotal[E], error)
}

type baseRepo[E IEntity] struct {
	coll *mongo.Collection
}

func newBaseRepo[E IEntity](dbc *mongo.Database) baseRepo[E] {
	var entity E
	return baseRepo[E]{
		coll: dbc.Collection(entity.CollectionName()),
	}
}

func (r *baseRepo[E]) Insert(ctx context.Context, entity E, opts ...*options.InsertOneOptions) (string, error) {
	result, err := r.coll.InsertOne(ctx, entity, opts...)
	if err != nil {
		return "", fmt.Errorf("insert one: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("invalid inserted id: %T %+v", result.InsertedID, result.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *baseRepo[E]) InsertMany(ctx context.Context, entities []E, opts ...*options.InsertManyOptions) ([]string, error) {
	docs := make([]any, 0, len(entities))
	for _, e := range entities {
		docs = append(docs, e)
	}
	result, err := r.coll.InsertMany(ctx, docs, opts...)
	if err != nil {
		return nil, fmt.Errorf("insert many: %w", err)
	}
	ids := make([]string, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		oid, ok := id.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("invalid inserted id: %T %+v", id, id)
		}
		ids[i] = oid.Hex()
	}

	return ids, nil
}

func (r *baseRepo[E]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]E, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var entities []E
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepo[E]) FindByID(ctx context.Context, docID string) (*E, error) {
	// a malformed id can never match a document
	if !primitive.IsValidObjectID(docID) {
		return new(E), models.ErrNotFound
	}
	id := models.ObjectID(docID)
	filter := bson.M{"_id": id}
	entity := new(E)
	err := r.coll.FindOne(ctx, filter).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, models.ErrNotFound
	}
	if err != nil {
		return entity, err
	}
	return entity, nil
}

func (r *baseRepo[E]) FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*E, error) {
	var entity E
	err := r.coll.FindOne(ctx, filter, opts...).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepo[E]) UpdateOne(ctx context.Context, filter bson.M, entity E, opts ...*options.FindOneAndUpdateOptions) (*E, error) {
	update := bson.M{
		"$set": entity.GetUpdates(),
	}
	updateOpt := options.
		FindOneAndUpdate().
		SetReturnDocument(options.After)
	opts = append(opts, updateOpt)

	var updatedEntity E
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts...).Decode(&updatedEntity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updatedEntity, nil
}

func (r *baseRepo[E]) UpdateMany(ctx context.Context, filter bson.M, data any, opts ...*options.UpdateOptions) error {
	_, err := r.coll.UpdateMany(ctx, filter, data, opts...)
	return err
}

func (r *baseRepo[E]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *baseRepo[E]) Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	return r.coll.CountDocuments(ctx, filter, opts...)
}

func (r *baseRepo[E]) PaginateWithTotal(ctx context.Context, filter bson.M, limit int64, skip int64, opts ...*options.FindOptions) (*PaginateWithTotal[E], error) {
	group, ctx := errgroup.WithContext(ctx)
	var entities []E
	var total int64

	group.Go(func() error {
		opts = append(opts, options.Find().SetSkip(skip).SetLimit(limit))
		cursor, err := r.coll.Find(ctx, filter, opts...)
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}
		if err := cursor.All(ctx, &entities); err != nil {
			return fmt.Errorf("cursor all: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		total, err = r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("count documents: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &PaginateWithTotal[E]{Total: total, Data: entities}, nil
}
