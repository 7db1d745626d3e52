package models

import (
	"time"
)

type RunnerStatus struct {
	EthBlockNumber string
	Cursor         string
	// LastError is empty when the last run completed.
	LastError string
}

type ServiceHealth struct {
	Name           string    `bson:"name" json:"name"`
	LastSyncTime   time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime   time.Time `bson:"next_sync_time" json:"next_sync_time"`
	EthBlockNumber string    `bson:"eth_block_number" json:"eth_block_number"`
	Cursor         string    `bson:"cursor" json:"cursor"`
	LastError      string    `bson:"last_error,omitempty" json:"last_error,omitempty"`
	Healthy        bool      `bson:"healthy" json:"healthy"`
}
