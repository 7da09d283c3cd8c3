// Package docstore is the gateway to the target document store. Documents are
// plain structs with bson tags whose identifier lives in "_id".
package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID          = "_id"
	FieldCreatedDate = "createdDate"
	FieldUpdateDate  = "updateDate"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// Store is the per-collection contract used by repositories.
type Store[T any] interface {
	Find(ctx context.Context, filter bson.M) ([]T, error)
	FindOne(ctx context.Context, filter bson.M) (T, error)
	FindByID(ctx context.Context, id string) (T, error)
	// Insert stores doc and returns its id. A preset id is kept.
	Insert(ctx context.Context, doc T) (string, error)
	// UpdateByID replaces every field of the stored document except its id
	// and creation date.
	UpdateByID(ctx context.Context, id string, doc T) error
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
}

// ParseID converts a hex id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// toDocument flattens doc into a bson.M through its bson tags.
func toDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDocument[T any](m bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(m)
	if err != nil {
		return out, err
	}
	err = bson.Unmarshal(raw, &out)
	return out, err
}

// prepareInsert assigns an id when missing and stamps both dates.
func prepareInsert(doc any, now time.Time) (bson.M, primitive.ObjectID, error) {
	m, err := toDocument(doc)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}

	oid, ok := m[FieldID].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
	}
	m[FieldID] = oid
	m[FieldCreatedDate] = primitive.NewDateTimeFromTime(now)
	m[FieldUpdateDate] = primitive.NewDateTimeFromTime(now)
	return m, oid, nil
}

// prepareUpdate builds the $set body of an update.
func prepareUpdate(doc any, now time.Time) (bson.M, error) {
	m, err := toDocument(doc)
	if err != nil {
		return nil, err
	}
	delete(m, FieldID)
	delete(m, FieldCreatedDate)
	m[FieldUpdateDate] = primitive.NewDateTimeFromTime(now)
	return m, nil
}

// OptionalID parses id, returning the nil ObjectID for an empty string.
func OptionalID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	return ParseID(id)
}

// HexID is the inverse of OptionalID.
func HexID(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
