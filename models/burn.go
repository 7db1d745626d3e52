package models

import (
	"time"
)

const (
	CollectionBurnRequests = "burn_requests"
)

// types of burn request status
const (
	BurnStatusReceivedNotBurned = "received_not_burned"
	BurnStatusBurned            = "burned"
	BurnStatusRejected          = "rejected"
)

type BurnRequest struct {
	Id                  string    `bson:"_id" json:"id"`
	Email               string    `bson:"email" json:"email"`
	Address             string    `bson:"address" json:"address"`
	Amount              string    `bson:"amount" json:"amount"`
	Bank                BankInfo  `bson:"bank" json:"bank"`
	Status              string    `bson:"status" json:"status"`
	BurnTransactionHash string    `bson:"burn_transaction_hash,omitempty" json:"burn_transaction_hash,omitempty"`
	RejectionReason     string    `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ProcessedBy         string    `bson:"processed_by,omitempty" json:"processed_by,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

func IsBurnStatus(status string) bool {
	switch status {
	case BurnStatusReceivedNotBurned, BurnStatusBurned, BurnStatusRejected:
		return true
	}
	return false
}
