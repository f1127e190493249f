package mongodb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// IsNotFound reports whether err is the driver's no-documents error
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// ByID builds a filter matching a document by its string identifier
func ByID(id string) bson.M {
	return bson.M{"_id": id}
}

// BuildUpdateWithTimestamp builds a $set update with automatic updatedAt
func BuildUpdateWithTimestamp(set bson.M) bson.M {
	set["updatedAt"] = Now()
	return bson.M{"$set": set}
}

// SortAscending creates an ascending sort option
func SortAscending(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

// SortDescending creates a descending sort option
func SortDescending(field string) bson.D {
	return bson.D{{Key: field, Value: -1}}
}

// Upsert returns replace options that insert when no document matches
func Upsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}
