package mocks

import (
	"medora-portal/internal/app/models"
	"sync"
)

// RecordingNotifier keeps every notification in order.
type RecordingNotifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func (n *RecordingNotifier) Notify(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, models.Notification{Level: level, Message: message})
}

func (n *RecordingNotifier) All() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.items))
	copy(out, n.items)
	return out
}

func (n *RecordingNotifier) Last() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == 0 {
		return models.Notification{}
	}
	return n.items[len(n.items)-1]
}
