package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID is used to seamlessly convert between string and primitive.ObjectID.
// Catalog entries fetched from the fallback dataset carry slug identifiers
// that are not valid ObjectIDs; those never reach the document store, so the
// marshal error path only fires on programmer mistakes.
//
//nolint:recvcheck // use pointer receiver to match bson.UnmarshalValue
type ObjectID string

// NewObjectID returns a freshly generated hex identifier.
func NewObjectID() ObjectID {
	return ObjectID(primitive.NewObjectID().Hex())
}

func (o ObjectID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	p, err := primitive.ObjectIDFromHex(string(o))
	if err != nil {
		return bson.TypeNull, nil, err
	}
	return bson.MarshalValue(p)
}

func (o *ObjectID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var p primitive.ObjectID
	err := bson.UnmarshalValue(t, data, &p)
	if err != nil {
		return err
	}
	*o = ObjectID(p.Hex())
	return nil
}

func (o ObjectID) String() string {
	return string(o)
}

// IsValid reports whether the id parses as a hex ObjectID.
func (o ObjectID) IsValid() bool {
	return primitive.IsValidObjectID(string(o))
}
