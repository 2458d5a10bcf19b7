package storefront

import (
	"sync"
	"time"
)

// Auto-dismiss intervals. Toasts are the short inline confirmations
// ("Coupon applied successfully"); notifications are the longer banner
// messages (order placed, admin actions).
const (
	ToastDuration        = 2500 * time.Millisecond
	NotificationDuration = 4 * time.Second
)

// Notifier holds at most one toast and one notification at a time; showing
// a new message replaces the current one and restarts its dismiss timer.
type Notifier struct {
	mu sync.Mutex

	toast      string
	toastTimer *time.Timer

	notification string
	notifTimer   *time.Timer
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) ShowToast(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toast = msg
	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
	n.toastTimer = time.AfterFunc(ToastDuration, func() {
		n.mu.Lock()
		if n.toast == msg {
			n.toast = ""
		}
		n.mu.Unlock()
	})
}

func (n *Notifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notification = msg
	if n.notifTimer != nil {
		n.notifTimer.Stop()
	}
	n.notifTimer = time.AfterFunc(NotificationDuration, func() {
		n.mu.Lock()
		if n.notification == msg {
			n.notification = ""
		}
		n.mu.Unlock()
	})
}

func (n *Notifier) Toast() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.toast
}

func (n *Notifier) Notification() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notification
}

// Dismiss clears both messages immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toast = ""
	n.notification = ""
	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
	if n.notifTimer != nil {
		n.notifTimer.Stop()
	}
}
