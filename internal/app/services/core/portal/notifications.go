package portal

import (
	"medora-portal/internal/app/models"
	"sync"
)

const maxQueuedNotifications = 20

// notificationQueue holds messages until the next page render picks them
// up. The oldest message is dropped once the queue is full.
type notificationQueue struct {
	mu    sync.Mutex
	items []models.Notification
}

func (q *notificationQueue) Notify(level, message string) {
	if message == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == maxQueuedNotifications {
		q.items = q.items[1:]
	}
	q.items = append(q.items, models.Notification{Level: level, Message: message})
}

func (q *notificationQueue) Drain() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}
