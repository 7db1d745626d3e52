package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func AppendBalanceSample(sample models.BalanceSample) error {
	if err := app.DB.InsertOne(models.CollectionBalanceSamples, sample); err != nil {
		return wrapIO(err, "insert balance sample")
	}
	return nil
}

// LatestBalanceSample returns the most recent sample, or nil when none exist.
func LatestBalanceSample() (*models.BalanceSample, error) {
	var sample models.BalanceSample
	sort := bson.D{{Key: "timestamp", Value: -1}}
	err := app.DB.FindLatest(models.CollectionBalanceSamples, bson.M{}, sort, &sample)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapIO(err, "find latest balance sample")
	}
	return &sample, nil
}

// BalanceSamplesSince returns samples taken at or after since, oldest first.
func BalanceSamplesSince(since time.Time) ([]models.BalanceSample, error) {
	samples := []models.BalanceSample{}
	filter := bson.M{"timestamp": bson.M{"$gte": since}}
	sort := bson.D{{Key: "timestamp", Value: 1}}

	err := app.DB.FindManySorted(models.CollectionBalanceSamples, filter, sort, &samples)
	if err != nil {
		return nil, wrapIO(err, "list balance samples")
	}
	return samples, nil
}
