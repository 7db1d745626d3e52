package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionBanks = "banks"
)

// BankInfo is the payout destination attached to a burn request.
type BankInfo struct {
	HolderName    string `bson:"holder_name" json:"holder_name" validate:"required"`
	NationalId    string `bson:"national_id" json:"national_id" validate:"required"`
	BankName      string `bson:"bank_name" json:"bank_name" validate:"required"`
	AccountType   string `bson:"account_type" json:"account_type" validate:"required"`
	AccountNumber string `bson:"account_number" json:"account_number" validate:"required"`
	Email         string `bson:"email" json:"email" validate:"required,email"`
}

type Bank struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Owner     string              `bson:"owner" json:"owner"`
	Info      BankInfo            `bson:"info" json:"info"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
