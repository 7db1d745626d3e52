package store

import (
	"errors"
	"testing"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEnqueueNotification(t *testing.T) {
	mockDB := mocks.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().InsertOne(models.CollectionNotifications, mock.Anything).
		Run(func(_ string, data interface{}) {
			notification := data.(models.Notification)
			assert.NotNil(t, notification.Id)
			assert.Equal(t, models.NotificationStatusPending, notification.Status)
			assert.Equal(t, int64(0), notification.Attempts)
		}).
		Return(nil)

	err := EnqueueNotification(models.Notification{
		Channel:  models.ChannelOperator,
		Severity: models.SeverityInfo,
		Title:    "title",
		Attempts: 3,
	})

	assert.Nil(t, err)
}

func TestMarkNotificationAttemptFailed(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("Retries Remaining", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNotifications, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.NotificationStatusPending, set["status"])
				assert.Equal(t, "boom", set["last_error"])
			}).
			Return(int64(1), nil)

		err := MarkNotificationAttemptFailed(models.Notification{Id: &id, Attempts: 1}, errors.New("boom"), 5)
		assert.Nil(t, err)
	})

	t.Run("Gives Up", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNotifications, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.NotificationStatusFailed, set["status"])
			}).
			Return(int64(1), nil)

		err := MarkNotificationAttemptFailed(models.Notification{Id: &id, Attempts: 4}, errors.New("boom"), 5)
		assert.Nil(t, err)
	})
}
