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

// CreateDeposit inserts a new deposit. An existing id is reported as a
// conflict and never overwritten.
func CreateDeposit(deposit models.Deposit) error {
	err := app.DB.InsertOne(models.CollectionDeposits, deposit)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrapf(common.ErrConflict, "deposit %s already exists", deposit.Id)
		}
		return wrapIO(err, "insert deposit")
	}
	return nil
}

func GetDeposit(id string) (models.Deposit, error) {
	return GetDepositTx(app.DB, id)
}

func GetDepositTx(db app.Database, id string) (models.Deposit, error) {
	var deposit models.Deposit
	err := db.FindOne(models.CollectionDeposits, bson.M{"_id": id}, &deposit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return deposit, errors.Wrapf(common.ErrNotFound, "deposit %s", id)
		}
		return deposit, wrapIO(err, "find deposit")
	}
	return deposit, nil
}

// UpdateDepositFields merges non status fields into a deposit, all or nothing.
func UpdateDepositFields(id string, fields bson.M) error {
	if _, ok := fields["status"]; ok {
		return errors.Wrap(common.ErrValidation, "status changes must go through a transition")
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	matched, err := app.DB.UpdateOne(models.CollectionDeposits, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapIO(err, "update deposit")
	}
	if matched == 0 {
		return errors.Wrapf(common.ErrNotFound, "deposit %s", id)
	}
	return nil
}

// TransitionDeposit moves a deposit out of fromStatus, stamping fields. It
// returns false when the deposit is no longer in fromStatus.
func TransitionDeposit(db app.Database, id string, fromStatus string, fields bson.M) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": fromStatus,
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	matched, err := db.UpdateOne(models.CollectionDeposits, filter, bson.M{"$set": set})
	if err != nil {
		// the only unique field a transition sets is the mint reference
		if mongo.IsDuplicateKeyError(err) {
			return false, errors.Wrapf(common.ErrConflict, "deposit %s: mint already recorded against another deposit", id)
		}
		return false, wrapIO(err, "transition deposit")
	}
	return matched > 0, nil
}

// MarkDepositsMinted moves every listed deposit from accepted_not_minted to
// accepted_minted in one transaction. If any of them fails its status
// condition none are changed and ErrConflict is returned.
func MarkDepositsMinted(records []models.MintRecord) error {
	if len(records) == 0 {
		return nil
	}

	return InTransaction("mark deposits minted", func(tx app.Database) error {
		for _, record := range records {
			applied, err := TransitionDeposit(tx, record.DepositId, models.DepositStatusAcceptedNotMinted, mintedFields(record))
			if err != nil {
				return err
			}
			if !applied {
				return errors.Wrapf(common.ErrConflict, "deposit %s is not awaiting mint", record.DepositId)
			}
		}
		return nil
	})
}

// MarkDepositMinted settles a single deposit. It returns false when the
// deposit is not awaiting mint.
func MarkDepositMinted(record models.MintRecord) (bool, error) {
	return TransitionDeposit(app.DB, record.DepositId, models.DepositStatusAcceptedNotMinted, mintedFields(record))
}

func mintedFields(record models.MintRecord) bson.M {
	return bson.M{
		"status":                models.DepositStatusAcceptedMinted,
		"mint_transaction_hash": record.TransactionHash,
		"mint_log_index":        record.LogIndex,
	}
}

func ListDepositsByStatus(statuses ...string) ([]models.Deposit, error) {
	deposits := []models.Deposit{}
	filter := bson.M{"status": bson.M{"$in": statuses}}
	sort := bson.D{{Key: "created_at", Value: 1}}

	err := app.DB.FindManySorted(models.CollectionDeposits, filter, sort, &deposits)
	if err != nil {
		return nil, wrapIO(err, "list deposits")
	}
	return deposits, nil
}

// FindDepositByMint returns the deposit already settled by the given mint
// event, if any.
func FindDepositByMint(txHash string, logIndex uint) (*models.Deposit, error) {
	var deposit models.Deposit
	filter := bson.M{
		"mint_transaction_hash": txHash,
		"mint_log_index":        logIndex,
	}
	err := app.DB.FindOne(models.CollectionDeposits, filter, &deposit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapIO(err, "find deposit by mint")
	}
	return &deposit, nil
}
