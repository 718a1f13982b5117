// Package docstore reads the clinic's operational collections from MongoDB.
package docstore

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinic-assistant-be/pkg/store"
)

type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Collections lists the collection names present in the database.
func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// SampleFields reads one document and returns its field names, sorted, with
// the Mongo _id left out. An empty collection yields no fields and no error.
func (s *MongoStore) SampleFields(ctx context.Context, collection string) ([]string, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(doc))
	for k := range doc {
		if k == "_id" {
			continue
		}
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields, nil
}

// Find runs a filtered, projected, limited query and returns plain records.
func (s *MongoStore) Find(ctx context.Context, collection string, filter map[string]interface{}, fields []string, limit int64) ([]store.Record, error) {
	opts := options.Find().SetLimit(limit)
	if len(fields) > 0 {
		projection := bson.M{"_id": 0}
		for _, f := range fields {
			projection[f] = 1
		}
		opts.SetProjection(projection)
	}

	mongoFilter := bson.M{}
	for k, v := range filter {
		mongoFilter[k] = v
	}

	cursor, err := s.db.Collection(collection).Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []store.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		delete(doc, "_id")
		results = append(results, store.Record(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
