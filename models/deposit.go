package models

import (
	"time"
)

const (
	CollectionDeposits = "deposits"
)

// types of deposit status
const (
	DepositStatusPending           = "pending"
	DepositStatusAcceptedNotMinted = "accepted_not_minted"
	DepositStatusAcceptedMinted    = "accepted_minted"
	DepositStatusRejected          = "rejected"
)

type Deposit struct {
	Id                  string    `bson:"_id" json:"id"`
	Email               string    `bson:"email" json:"email"`
	Address             string    `bson:"address" json:"address"`
	Amount              string    `bson:"amount" json:"amount"`
	Status              string    `bson:"status" json:"status"`
	ProofImageURL       string    `bson:"proof_image_url,omitempty" json:"proof_image_url,omitempty"`
	RejectionReason     string    `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	MintTransactionHash string    `bson:"mint_transaction_hash,omitempty" json:"mint_transaction_hash,omitempty"`
	MintLogIndex        *uint     `bson:"mint_log_index,omitempty" json:"mint_log_index,omitempty"`
	ApprovedBy          string    `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	RejectedBy          string    `bson:"rejected_by,omitempty" json:"rejected_by,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// MintRecord links a deposit to the on-chain mint that settled it.
type MintRecord struct {
	DepositId       string
	TransactionHash string
	LogIndex        uint
}

func IsDepositStatus(status string) bool {
	switch status {
	case DepositStatusPending, DepositStatusAcceptedNotMinted, DepositStatusAcceptedMinted, DepositStatusRejected:
		return true
	}
	return false
}
