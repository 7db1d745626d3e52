package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionNotifications = "notifications"
)

const (
	ChannelOperator = "operator"
	ChannelUser     = "user"
)

const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

const (
	SeverityInfo      = "info"
	SeveritySuccess   = "success"
	SeverityWarning   = "warning"
	SeverityError     = "error"
	SeverityEmergency = "emergency"
)

// user email templates
const (
	TemplateNewDeposit      = "new_deposit"
	TemplateDepositApproved = "deposit_approved"
	TemplateDepositRejected = "deposit_rejected"
	TemplateBurnReceived    = "burn_received"
	TemplateBurnCompleted   = "burn_completed"
	TemplateBurnRejected    = "burn_rejected"
)

type Notification struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Channel      string              `bson:"channel" json:"channel"`
	Severity     string              `bson:"severity" json:"severity"`
	Title        string              `bson:"title" json:"title"`
	Message      string              `bson:"message" json:"message"`
	ImageURL     string              `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Email        string              `bson:"email,omitempty" json:"email,omitempty"`
	Template     string              `bson:"template,omitempty" json:"template,omitempty"`
	TemplateData map[string]string   `bson:"template_data,omitempty" json:"template_data,omitempty"`
	Status       string              `bson:"status" json:"status"`
	Attempts     int64               `bson:"attempts" json:"attempts"`
	LastError    string              `bson:"last_error,omitempty" json:"last_error,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
