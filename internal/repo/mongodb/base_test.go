package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/partshub/catalog-service/internal/models"
)

// Connect performs no IO until the first operation, and the malformed-id
// guards return before any, so these run without a server.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return client.Database("catalog_test")
}

func TestFindByIDRejectsMalformedID(t *testing.T) {
	t.Parallel()
	repo := newBaseRepo[models.Part](testDatabase(t))

	_, err := repo.FindByID(context.Background(), "castrol-gtx-20w50")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSoftDeleteRejectsMalformedID(t *testing.T) {
	t.Parallel()
	repo := NewPartsRepo(testDatabase(t))

	err := repo.SoftDelete(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
