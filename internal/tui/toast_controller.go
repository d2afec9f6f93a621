package tui

import (
	"time"

	"github.com/hay-kot/mindmap/internal/core/notify"
)

const (
	maxToasts         = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 40
)

// toastTTL is how long a notification stays on screen. Failures stay up
// longer than confirmations.
func toastTTL(level notify.Level) time.Duration {
	switch level {
	case notify.LevelError:
		return 8 * time.Second
	case notify.LevelWarning:
		return 6 * time.Second
	default:
		return 3 * time.Second
	}
}

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController holds the document notifications currently on screen.
// A notification replaces any toast it supersedes, so repeated saves or
// disk changes of one document show a single, current toast.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push shows n, dropping toasts it supersedes and then the oldest beyond
// maxToasts.
func (c *ToastController) Push(n notify.Notification) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !n.Supersedes(t.notification) {
			kept = append(kept, t)
		}
	}

	c.toasts = append(kept, toast{notification: n, remaining: toastTTL(n.Level)})
	if len(c.toasts) > maxToasts {
		c.toasts = c.toasts[len(c.toasts)-maxToasts:]
	}
}

// Tick counts d off every toast and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// DismissAll clears the stack.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

// DismissDocument drops the toasts about document, used when the map is
// replaced and they no longer describe what is on screen.
func (c *ToastController) DismissDocument(document string) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.notification.Document != document {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking reports whether a tick is scheduled.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
