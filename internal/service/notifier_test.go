package service

import (
	"testing"

	"shop_api/internal/models"
)

func TestRegistrationNotifier_EnqueueNeverBlocks(t *testing.T) {
	n := NewRegistrationNotifier(nil)

	// Fill the queue well past capacity with no consumer running; the overflow
	// must be dropped, not block the caller.
	for i := 0; i < notifierQueueSize*2; i++ {
		n.UserRegistered(models.User{ID: i})
	}

	if len(n.queue) != notifierQueueSize {
		t.Fatalf("expected queue at capacity %d, got %d", notifierQueueSize, len(n.queue))
	}
}
