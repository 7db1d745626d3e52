package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateBurnRequest(burn models.BurnRequest) error {
	err := app.DB.InsertOne(models.CollectionBurnRequests, burn)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrapf(common.ErrConflict, "burn request %s already exists", burn.Id)
		}
		return wrapIO(err, "insert burn request")
	}
	return nil
}

func GetBurnRequest(id string) (models.BurnRequest, error) {
	var burn models.BurnRequest
	err := app.DB.FindOne(models.CollectionBurnRequests, bson.M{"_id": id}, &burn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return burn, errors.Wrapf(common.ErrNotFound, "burn request %s", id)
		}
		return burn, wrapIO(err, "find burn request")
	}
	return burn, nil
}

func ListBurnRequestsByStatus(statuses ...string) ([]models.BurnRequest, error) {
	burns := []models.BurnRequest{}
	filter := bson.M{"status": bson.M{"$in": statuses}}
	sort := bson.D{{Key: "created_at", Value: 1}}

	err := app.DB.FindManySorted(models.CollectionBurnRequests, filter, sort, &burns)
	if err != nil {
		return nil, wrapIO(err, "list burn requests")
	}
	return burns, nil
}

// TransitionBurnRequest moves a burn request out of received_not_burned. It
// returns false when the request was already processed.
func TransitionBurnRequest(id string, fields bson.M) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": models.BurnStatusReceivedNotBurned,
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	matched, err := app.DB.UpdateOne(models.CollectionBurnRequests, filter, bson.M{"$set": set})
	if err != nil {
		return false, wrapIO(err, "transition burn request")
	}
	return matched > 0, nil
}
