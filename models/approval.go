package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionApprovalTokens  = "approval_tokens"
	CollectionApprovalMembers = "approval_members"
)

type ApprovalToken struct {
	Token     string    `bson:"_id" json:"-"`
	DepositId string    `bson:"deposit_id" json:"deposit_id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type ApprovalMember struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string              `bson:"name" json:"name"`
	PasswordHash string              `bson:"password_hash" json:"-"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
}
