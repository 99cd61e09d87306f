package service

import (
	"context"

	"shop_api/internal/logger"
	"shop_api/internal/models"
)

const notifierQueueSize = 64

// RegistrationNotifier delivers "user registered" notifications (the welcome
// email hook) decoupled from the registration transaction: enqueueing never
// blocks and delivery failure never fails a registration.
type RegistrationNotifier struct {
	log   *logger.Logger
	queue chan models.User
}

var _ Notifications = (*RegistrationNotifier)(nil)

func NewRegistrationNotifier(log *logger.Logger) *RegistrationNotifier {
	return &RegistrationNotifier{
		log:   log,
		queue: make(chan models.User, notifierQueueSize),
	}
}

// UserRegistered enqueues a notification. If the queue is full the event is
// dropped with a log line; registration itself already succeeded.
func (n *RegistrationNotifier) UserRegistered(u models.User) {
	select {
	case n.queue <- u:
	default:
		if n.log != nil {
			n.log.Warnw("registration_notification_dropped", "user_id", u.ID)
		}
	}
}

// Run drains the queue until ctx is cancelled. Delivery here is the outbound
// hand-off point; the current transport is the log.
func (n *RegistrationNotifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-n.queue:
			if n.log != nil {
				n.log.Infow("welcome_notification_sent", "user_id", u.ID, "email", u.Email)
			}
		}
	}
}
