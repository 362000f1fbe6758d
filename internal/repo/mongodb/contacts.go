package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/partshub/catalog-service/internal/models"
)

type ContactsRepo interface {
	IRepository[models.ContactMessage]
}

type contactsRepo struct {
	baseRepo[models.ContactMessage]
}

func NewContactsRepo(dbc *mongo.Database) ContactsRepo {
	return &contactsRepo{
		baseRepo: newBaseRepo[models.ContactMessage](dbc),
	}
}
