package models

import (
	"time"
)

const (
	CollectionBlockCursors   = "block_cursors"
	CollectionUnmatchedMints = "unmatched_mints"
)

const (
	CursorTokensMinted = "TokensMinted"
)

// reasons a mint event could not be settled against a deposit
const (
	UnmatchedReasonNoMatch   = "no_match"
	UnmatchedReasonAmbiguous = "ambiguous"
)

type BlockCursor struct {
	Key                string    `bson:"_id" json:"key"`
	LastProcessedBlock int64     `bson:"last_processed_block" json:"last_processed_block"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

type UnmatchedMint struct {
	TransactionHash  string    `bson:"transaction_hash" json:"transaction_hash"`
	LogIndex         uint      `bson:"log_index" json:"log_index"`
	BlockNumber      uint64    `bson:"block_number" json:"block_number"`
	RecipientAddress string    `bson:"recipient_address" json:"recipient_address"`
	Amount           string    `bson:"amount" json:"amount"`
	Reason           string    `bson:"reason" json:"reason"`
	CandidateIds     []string  `bson:"candidate_ids" json:"candidate_ids"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
