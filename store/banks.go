package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func AddBank(owner string, info models.BankInfo) (models.Bank, error) {
	id := primitive.NewObjectID()
	bank := models.Bank{
		Id:        &id,
		Owner:     owner,
		Info:      info,
		CreatedAt: time.Now(),
	}

	err := app.DB.InsertOne(models.CollectionBanks, bank)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Bank{}, errors.Wrap(common.ErrConflict, "bank account already registered")
		}
		return models.Bank{}, wrapIO(err, "insert bank")
	}
	return bank, nil
}

func ListBanks(owner string) ([]models.Bank, error) {
	banks := []models.Bank{}
	sort := bson.D{{Key: "created_at", Value: 1}}

	err := app.DB.FindManySorted(models.CollectionBanks, bson.M{"owner": owner}, sort, &banks)
	if err != nil {
		return nil, wrapIO(err, "list banks")
	}
	return banks, nil
}
