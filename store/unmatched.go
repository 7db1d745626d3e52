package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// FlagUnmatchedMint records a mint event that could not be settled cleanly.
// It returns false when the event had already been flagged.
func FlagUnmatchedMint(doc models.UnmatchedMint) (bool, error) {
	doc.CreatedAt = time.Now()
	err := app.DB.InsertOne(models.CollectionUnmatchedMints, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, wrapIO(err, "insert unmatched mint")
	}
	return true, nil
}
