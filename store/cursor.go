package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetBlockCursor returns the last processed block for key, or nil when the
// cursor has never been written.
func GetBlockCursor(key string) (*models.BlockCursor, error) {
	var cursor models.BlockCursor
	err := app.DB.FindOne(models.CollectionBlockCursors, bson.M{"_id": key}, &cursor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapIO(err, "find block cursor")
	}
	return &cursor, nil
}

// SaveBlockCursor advances the cursor. It never moves a cursor backwards.
func SaveBlockCursor(key string, block int64) error {
	filter := bson.M{
		"_id": key,
		"$or": bson.A{
			bson.M{"last_processed_block": bson.M{"$lt": block}},
			bson.M{"last_processed_block": bson.M{"$exists": false}},
		},
	}
	update := bson.M{"$set": bson.M{
		"last_processed_block": block,
		"updated_at":           time.Now(),
	}}

	err := app.DB.UpsertOne(models.CollectionBlockCursors, filter, update)
	if err != nil {
		// an upsert racing a cursor already at or past block hits the _id index
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return wrapIO(err, "save block cursor")
	}
	return nil
}

// InitBlockCursor persists the starting cursor for key and returns it. A
// cursor written concurrently by another process wins.
func InitBlockCursor(key string, block int64) (*models.BlockCursor, error) {
	cursor := models.BlockCursor{
		Key:                key,
		LastProcessedBlock: block,
		UpdatedAt:          time.Now(),
	}
	err := app.DB.InsertOne(models.CollectionBlockCursors, cursor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return GetBlockCursor(key)
		}
		return nil, wrapIO(err, "init block cursor")
	}
	return &cursor, nil
}
