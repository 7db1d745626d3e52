package models

import (
	"time"
)

const (
	CollectionBalanceSamples = "balance_samples"
)

const (
	BalanceSourceVault = "vault"
	BalanceSourceCache = "cache"
)

// history windows accepted by the balance history read
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

type BalanceSample struct {
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Balance   float64   `bson:"balance" json:"balance"`
	Source    string    `bson:"source" json:"source"`
}
