package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"
)

const (
	DispatcherName = "NOTIFICATION DISPATCHER"
)

// DispatcherRunner drains the notification outbox. Each entry is delivered
// under its own lock so several instances can share one outbox.
type DispatcherRunner struct {
	operator    Notifier
	user        Notifier
	maxAttempts int64
	timeout     time.Duration
	lockTTL     time.Duration

	statusMu  sync.Mutex
	delivered int
	failed    int
	lastError string
}

func (x *DispatcherRunner) Run() {
	x.Dispatch()
}

func (x *DispatcherRunner) Status() models.RunnerStatus {
	x.statusMu.Lock()
	defer x.statusMu.Unlock()
	return models.RunnerStatus{
		Cursor:    fmt.Sprintf("delivered=%d failed=%d", x.delivered, x.failed),
		LastError: x.lastError,
	}
}

func (x *DispatcherRunner) setLastError(err error) {
	x.statusMu.Lock()
	defer x.statusMu.Unlock()
	x.lastError = ""
	if err != nil {
		x.lastError = err.Error()
	}
}

// Dispatch makes one delivery attempt for every pending entry.
func (x *DispatcherRunner) Dispatch() {
	pending, err := store.PendingNotifications()
	x.setLastError(err)
	if err != nil {
		log.Error("[NOTIFY] Error listing pending notifications: ", err)
		return
	}
	log.Debug("[NOTIFY] Pending notifications: ", len(pending))

	for _, notification := range pending {
		x.dispatch(notification)
	}
}

func (x *DispatcherRunner) notifierFor(channel string) Notifier {
	switch channel {
	case models.ChannelOperator:
		return x.operator
	case models.ChannelUser:
		return x.user
	}
	return nil
}

func (x *DispatcherRunner) dispatch(pending models.Notification) {
	resource := fmt.Sprintf("notifications/%s", pending.Id.Hex())
	lockId, err := app.DB.XLock(resource, x.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyLocked) {
			log.Debug("[NOTIFY] Notification ", pending.Id.Hex(), " is being delivered elsewhere")
		} else {
			log.Error("[NOTIFY] Error locking notification ", pending.Id.Hex(), ": ", err)
		}
		return
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[NOTIFY] Error unlocking notification ", pending.Id.Hex(), ": ", err)
		}
	}()

	// another instance may have delivered it between listing and locking
	notification, err := store.GetNotification(pending.Id)
	if err != nil {
		log.Error("[NOTIFY] Error reloading notification ", pending.Id.Hex(), ": ", err)
		return
	}
	if notification.Status != models.NotificationStatusPending {
		return
	}

	notifier := x.notifierFor(notification.Channel)
	if notifier == nil {
		log.Debug("[NOTIFY] No notifier for channel ", notification.Channel, ", dropping ", notification.Title)
		if err := store.MarkNotificationSent(notification.Id); err != nil {
			log.Error("[NOTIFY] Error marking notification sent: ", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	if err := notifier.Deliver(ctx, notification); err != nil {
		log.Warn("[NOTIFY] Error delivering ", notification.Channel, " notification ", notification.Title, ": ", err)
		x.record(false)
		if err := store.MarkNotificationAttemptFailed(notification, err, x.maxAttempts); err != nil {
			log.Error("[NOTIFY] Error recording failed attempt: ", err)
		}
		return
	}

	log.Info("[NOTIFY] Delivered ", notification.Channel, " notification: ", notification.Title)
	x.record(true)
	if err := store.MarkNotificationSent(notification.Id); err != nil {
		log.Error("[NOTIFY] Error marking notification sent: ", err)
	}
}

func (x *DispatcherRunner) record(delivered bool) {
	x.statusMu.Lock()
	defer x.statusMu.Unlock()
	if delivered {
		x.delivered++
	} else {
		x.failed++
	}
}

func NewDispatcherRunner(operator Notifier, user Notifier, maxAttempts int64) *DispatcherRunner {
	return &DispatcherRunner{
		operator:    operator,
		user:        user,
		maxAttempts: maxAttempts,
		timeout:     15 * time.Second,
		lockTTL:     time.Minute,
	}
}

func NewDispatcherService(wg *sync.WaitGroup) app.Service {
	if !app.Config.NotificationDispatcher.Enabled {
		log.Debugf("[%s] Service disabled", DispatcherName)
		return app.NewEmptyService(wg)
	}

	x := NewDispatcherRunner(
		NewDiscordNotifierFromConfig(),
		NewEmailNotifierFromConfig(),
		app.Config.NotificationDispatcher.MaxAttempts,
	)
	return app.NewRunnerService(
		DispatcherName,
		x,
		wg,
		time.Duration(app.Config.NotificationDispatcher.IntervalMillis)*time.Millisecond,
	)
}
