package notify

import (
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/store"
	log "github.com/sirupsen/logrus"
)

// Operator queues a message for the operator channel. Enqueue failures are
// logged only; the state change that produced the message has committed.
func Operator(severity string, title string, message string, imageURL string) {
	err := store.EnqueueNotification(models.Notification{
		Channel:  models.ChannelOperator,
		Severity: severity,
		Title:    title,
		Message:  message,
		ImageURL: imageURL,
	})
	if err != nil {
		log.Error("[NOTIFY] Error enqueueing operator notification ", title, ": ", err)
	}
}

// User queues a templated email for an end user.
func User(email string, template string, data map[string]string) {
	err := store.EnqueueNotification(models.Notification{
		Channel:      models.ChannelUser,
		Severity:     models.SeverityInfo,
		Title:        template,
		Email:        email,
		Template:     template,
		TemplateData: data,
	})
	if err != nil {
		log.Error("[NOTIFY] Error enqueueing user email ", template, ": ", err)
	}
}
