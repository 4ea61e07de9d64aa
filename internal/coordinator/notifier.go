package coordinator

import (
	"sync"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.uber.org/zap"
)

// Notifier receives every user-visible outcome of a coordinator operation
type Notifier interface {
	Notify(n models.Notification)
}

// Feed is a bounded in-memory Notifier. The oldest entries are dropped once
// size is reached.
type Feed struct {
	mu     sync.Mutex
	items  []models.Notification
	size   int
	now    func() time.Time
	logger *logging.SafeLogger
}

// NewFeed creates a feed holding at most size notifications
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{
		size:   size,
		now:    time.Now,
		logger: logging.Named("notifications"),
	}
}

// Notify appends n to the feed
func (f *Feed) Notify(n models.Notification) {
	if n.Variant == "" {
		n.Variant = models.VariantDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = f.now()
	}

	observability.Notifications.WithLabelValues(string(n.Variant)).Inc()
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("description", n.Description),
		zap.String("variant", string(n.Variant)),
	}
	if n.Variant == models.VariantDestructive {
		f.logger.Warn("notification", fields...)
	} else {
		f.logger.Debug("notification", fields...)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if over := len(f.items) - f.size; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// Recent returns the retained notifications, oldest first
func (f *Feed) Recent() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// last returns the most recent notification
func (f *Feed) last() (models.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == 0 {
		return models.Notification{}, false
	}
	return f.items[len(f.items)-1], true
}
