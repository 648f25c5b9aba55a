package sweeper

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pockettcg/tradehub/tradehub/database/models"
)

// Archiver receives messages about to be purged. Implementations must be
// idempotent: the daily sweep can run twice over the same window.
type Archiver interface {
	Archive(ctx context.Context, messages []*models.Message) error
}

// MongoArchiver copies purged messages into a Mongo collection as a cold
// store, keyed by the original message ID so re-archiving is harmless.
type MongoArchiver struct {
	coll *mongo.Collection
}

func NewMongoArchiver(client *mongo.Client, database, collection string) *MongoArchiver {
	return &MongoArchiver{
		coll: client.Database(database).Collection(collection),
	}
}

func (a *MongoArchiver) Archive(ctx context.Context, messages []*models.Message) error {
	if len(messages) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		docs = append(docs, bson.M{
			"_id":            m.ID,
			"negotiation_id": m.NegotiationID,
			"sender_id":      m.SenderID,
			"content":        m.Content,
			"content_type":   string(m.ContentType),
			"is_system":      m.IsSystem,
			"is_read":        m.IsRead,
			"created_at":     m.CreatedAt,
		})
	}

	// Unordered insert keeps going past duplicate-key errors from a
	// previous partial run.
	_, err := a.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		var bulkErr mongo.BulkWriteException
		if !isOnlyDuplicates(err, &bulkErr) {
			return fmt.Errorf("failed to archive messages: %w", err)
		}
	}
	return nil
}

func isOnlyDuplicates(err error, bulkErr *mongo.BulkWriteException) bool {
	we, ok := err.(mongo.BulkWriteException)
	if !ok {
		return false
	}
	*bulkErr = we
	for _, writeErr := range we.WriteErrors {
		if writeErr.Code != 11000 {
			return false
		}
	}
	return true
}
