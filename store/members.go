package store

import (
	"strings"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8

	// bcrypt hashes are salted so password uniqueness cannot be indexed;
	// registrations take this lock instead.
	membersLockResource = "approval_members"
	membersLockTTL      = 30 * time.Second
)

// AddApprovalMember registers an approver. Passwords are stored as bcrypt
// hashes and must not collide with another member's password, since a
// password alone identifies the approver.
func AddApprovalMember(name string, password string) (models.ApprovalMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ApprovalMember{}, errors.Wrap(common.ErrValidation, "member name is required")
	}
	if len(password) < minPasswordLength {
		return models.ApprovalMember{}, errors.Wrapf(common.ErrValidation, "password must have at least %d characters", minPasswordLength)
	}

	lockId, err := app.DB.XLock(membersLockResource, membersLockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyLocked) {
			return models.ApprovalMember{}, errors.Wrap(common.ErrConflict, "another approval member is being added")
		}
		return models.ApprovalMember{}, wrapIO(err, "lock approval members")
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[STORE] Error unlocking approval members: ", err)
		}
	}()

	_, err = ValidateApprovalMember(password)
	if err == nil {
		return models.ApprovalMember{}, errors.Wrap(common.ErrConflict, "password already in use")
	}
	if !errors.Is(err, common.ErrUnauthorized) {
		return models.ApprovalMember{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.ApprovalMember{}, errors.Wrap(err, "hash password")
	}

	id := primitive.NewObjectID()
	member := models.ApprovalMember{
		Id:           &id,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	err = app.DB.InsertOne(models.CollectionApprovalMembers, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ApprovalMember{}, errors.Wrapf(common.ErrConflict, "member %s already exists", name)
		}
		return models.ApprovalMember{}, wrapIO(err, "insert approval member")
	}
	return member, nil
}

// ValidateApprovalMember returns the member whose password matches, or
// ErrUnauthorized.
func ValidateApprovalMember(password string) (models.ApprovalMember, error) {
	if password == "" {
		return models.ApprovalMember{}, errors.Wrap(common.ErrUnauthorized, "password is required")
	}

	members := []models.ApprovalMember{}
	err := app.DB.FindMany(models.CollectionApprovalMembers, bson.M{}, &members)
	if err != nil {
		return models.ApprovalMember{}, wrapIO(err, "list approval members")
	}

	for _, member := range members {
		if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) == nil {
			return member, nil
		}
	}
	return models.ApprovalMember{}, errors.Wrap(common.ErrUnauthorized, "invalid password")
}

// MemberExistsTx checks inside a transaction that a member is still registered.
func MemberExistsTx(db app.Database, id *primitive.ObjectID) (bool, error) {
	if id == nil {
		return false, nil
	}
	var member models.ApprovalMember
	err := db.FindOne(models.CollectionApprovalMembers, bson.M{"_id": id}, &member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, wrapIO(err, "find approval member")
	}
	return true, nil
}
