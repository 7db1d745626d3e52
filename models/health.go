package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	TokenAddress   string              `bson:"token_address" json:"token_address"`
	ChainID        string              `bson:"chain_id" json:"chain_id"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"service_healths"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}
