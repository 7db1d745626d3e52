package store

import (
	"crypto/subtle"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const tokenBytes = 32

// now is swapped in tests to pin token expiry
var now = time.Now

// IssueToken creates a one time approval token for a deposit.
func IssueToken(depositId string, ttl time.Duration) (models.ApprovalToken, error) {
	value, err := common.RandomHex(tokenBytes)
	if err != nil {
		return models.ApprovalToken{}, errors.Wrap(err, "generate approval token")
	}

	issuedAt := now()
	token := models.ApprovalToken{
		Token:     value,
		DepositId: depositId,
		ExpiresAt: issuedAt.Add(ttl),
		CreatedAt: issuedAt,
	}

	if err := app.DB.InsertOne(models.CollectionApprovalTokens, token); err != nil {
		return models.ApprovalToken{}, wrapIO(err, "insert approval token")
	}
	return token, nil
}

// ValidateToken reports whether token is a live approval token for depositId.
// Missing, mismatched and expired tokens all yield false without an error.
func ValidateToken(depositId string, token string) (bool, error) {
	return ValidateTokenTx(app.DB, depositId, token)
}

// ValidateTokenTx is ValidateToken bound to a transaction.
func ValidateTokenTx(db app.Database, depositId string, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	var doc models.ApprovalToken
	err := db.FindOne(models.CollectionApprovalTokens, bson.M{"_id": token}, &doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, wrapIO(err, "find approval token")
	}

	if subtle.ConstantTimeCompare([]byte(doc.DepositId), []byte(depositId)) != 1 {
		return false, nil
	}
	if now().After(doc.ExpiresAt) {
		return false, nil
	}
	return true, nil
}

// ConsumeToken deletes a token so it cannot be used again.
func ConsumeToken(token string) error {
	_, err := app.DB.DeleteOne(models.CollectionApprovalTokens, bson.M{"_id": token})
	if err != nil {
		return wrapIO(err, "delete approval token")
	}
	return nil
}
