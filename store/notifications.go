package store

import (
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnqueueNotification adds an entry to the outbox for later delivery.
func EnqueueNotification(notification models.Notification) error {
	id := primitive.NewObjectID()
	notification.Id = &id
	notification.Status = models.NotificationStatusPending
	notification.Attempts = 0
	notification.CreatedAt = time.Now()
	notification.UpdatedAt = notification.CreatedAt

	if err := app.DB.InsertOne(models.CollectionNotifications, notification); err != nil {
		return wrapIO(err, "insert notification")
	}
	return nil
}

func PendingNotifications() ([]models.Notification, error) {
	notifications := []models.Notification{}
	filter := bson.M{"status": models.NotificationStatusPending}
	sort := bson.D{{Key: "created_at", Value: 1}}

	err := app.DB.FindManySorted(models.CollectionNotifications, filter, sort, &notifications)
	if err != nil {
		return nil, wrapIO(err, "list pending notifications")
	}
	return notifications, nil
}

func GetNotification(id *primitive.ObjectID) (models.Notification, error) {
	var notification models.Notification
	err := app.DB.FindOne(models.CollectionNotifications, bson.M{"_id": id}, &notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return notification, errors.Wrapf(common.ErrNotFound, "notification %s", id.Hex())
		}
		return notification, wrapIO(err, "find notification")
	}
	return notification, nil
}

func MarkNotificationSent(id *primitive.ObjectID) error {
	filter := bson.M{"_id": id, "status": models.NotificationStatusPending}
	update := bson.M{
		"$set": bson.M{"status": models.NotificationStatusSent, "updated_at": time.Now()},
		"$inc": bson.M{"attempts": 1},
	}
	if _, err := app.DB.UpdateOne(models.CollectionNotifications, filter, update); err != nil {
		return wrapIO(err, "mark notification sent")
	}
	return nil
}

// MarkNotificationAttemptFailed records a failed delivery; the entry gives up
// once attempts reaches maxAttempts.
func MarkNotificationAttemptFailed(notification models.Notification, cause error, maxAttempts int64) error {
	status := models.NotificationStatusPending
	if notification.Attempts+1 >= maxAttempts {
		status = models.NotificationStatusFailed
	}

	filter := bson.M{"_id": notification.Id, "status": models.NotificationStatusPending}
	update := bson.M{
		"$set": bson.M{"status": status, "last_error": cause.Error(), "updated_at": time.Now()},
		"$inc": bson.M{"attempts": 1},
	}
	if _, err := app.DB.UpdateOne(models.CollectionNotifications, filter, update); err != nil {
		return wrapIO(err, "mark notification failed")
	}
	return nil
}
