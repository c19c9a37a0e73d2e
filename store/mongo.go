package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/etnz/optrack"
)

const (
	databaseName   = "optrack"
	collectionName = "transactions"
)

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

// OpenMongo connects to the document store at the given URL.
func OpenMongo(ctx context.Context, url string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to document store: %w", err)
	}
	return &Mongo{
		client: client,
		col:    client.Database(databaseName).Collection(collectionName),
	}, nil
}

// Close disconnects from the document store.
func (s *Mongo) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

// Import upserts the position-relevant transactions under their natural key.
// The upsert is atomic per key: insert-if-absent of the full document, plus
// an unconditional refresh of last_update_date.
func (s *Mongo) Import(ctx context.Context, txs []*optrack.Transaction) error {
	for _, tx := range txs {
		if !tx.Action.IsPositionRelevant() {
			continue
		}
		now := time.Now().UTC()
		doc := newDocument(tx, now)
		update := bson.M{
			"$setOnInsert": doc,
			"$set":         bson.M{"last_update_date": now},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := s.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, update, opts); err != nil {
			return fmt.Errorf("cannot upsert transaction %q: %w", doc.ID, err)
		}
	}
	return nil
}

// Query returns the stored option open/close transactions matching the
// filter, sorted by date ascending.
func (s *Mongo) Query(ctx context.Context, f optrack.Filter) ([]*optrack.Transaction, error) {
	query := bson.M{
		"underlying": bson.M{"$exists": true},
		"action":     bson.M{"$in": openCloseActions},
	}
	if f.Symbol != "" {
		// Validate the pattern locally before handing it to the store.
		if _, err := f.SymbolRegexp(); err != nil {
			return nil, err
		}
		query["symbol"] = primitive.Regex{Pattern: f.Symbol, Options: "i"}
	}
	if f.Underlying != "" {
		query["underlying"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(f.Underlying) + "$",
			Options: "i",
		}
	}
	if bounds := dateBounds(f); len(bounds) > 0 {
		query["date"] = bounds
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txs []*optrack.Transaction
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot decode transaction document: %w", err)
		}
		tx, err := doc.transaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transactions: %w", err)
	}
	return txs, nil
}

// dateBounds translates the filter's day range into timestamp bounds. The
// end day is whole-day inclusive: stored timestamps carry intra-day second
// offsets past midnight.
func dateBounds(f optrack.Filter) bson.M {
	bounds := bson.M{}
	if !f.Range.From.IsZero() {
		bounds["$gte"] = f.Range.From.Time()
	}
	if !f.Range.To.IsZero() {
		bounds["$lt"] = f.Range.To.Add(1).Time()
	}
	return bounds
}

var _ Store = (*Mongo)(nil)
