// internal/output/mongodb.go
package output

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civicdata/statement-go/pkg/types"
)

// MongoDBWriter upserts records into a MongoDB collection keyed by
// URL.
type MongoDBWriter struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoDBWriter connects with the given URI and targets
// database/collection.
func NewMongoDBWriter(uri, database, collection string) (*MongoDBWriter, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongodb uri is required")
	}
	if database == "" {
		database = "statement"
	}
	if collection == "" {
		collection = "releases"
	}

	timeout := 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBWriter{
		client:     client,
		collection: client.Database(database).Collection(collection),
		timeout:    timeout,
	}, nil
}

// Write upserts each record by URL so re-scraping a page refreshes
// titles and dates without duplicating documents.
func (w *MongoDBWriter) Write(records []types.Record) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(records))
	for _, r := range records {
		doc := bson.M{
			"source": r.Source,
			"url":    r.URL,
			"title":  r.Title,
			"domain": r.Domain,
		}
		if r.Date != nil {
			doc["date"] = r.Date.String()
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"url": r.URL}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	if _, err := w.collection.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("failed to write records to mongodb: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (w *MongoDBWriter) Close() error {
	if w.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	err := w.client.Disconnect(ctx)
	w.client = nil
	return err
}
