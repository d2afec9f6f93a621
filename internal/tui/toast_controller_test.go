package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/mindmap/internal/core/notify"
)

func docNotice(level notify.Level, ev notify.Event, doc, msg string) notify.Notification {
	return notify.Notification{Level: level, Event: ev, Document: doc, Message: msg}
}

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(docNotice(notify.LevelInfo, notify.EventSave, "a.txt", "Saved a.txt"))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "Saved a.txt", c.Toasts()[0].notification.Message)
	assert.Equal(t, toastTTL(notify.LevelInfo), c.Toasts()[0].remaining)
}

func TestToastController_Push_replaces_same_document_event(t *testing.T) {
	c := NewToastController()

	c.Push(docNotice(notify.LevelWarning, notify.EventReload, "a.txt", "a.txt changed on disk"))
	c.Push(docNotice(notify.LevelInfo, notify.EventSave, "a.txt", "Saved a.txt"))
	c.Push(docNotice(notify.LevelInfo, notify.EventReload, "a.txt", "Reloaded 4 nodes from a.txt"))

	require.Len(t, c.Toasts(), 2)
	assert.Equal(t, "Saved a.txt", c.Toasts()[0].notification.Message)
	assert.Equal(t, "Reloaded 4 nodes from a.txt", c.Toasts()[1].notification.Message)
}

func TestToastController_Push_keeps_other_documents(t *testing.T) {
	c := NewToastController()

	c.Push(docNotice(notify.LevelInfo, notify.EventLoad, "a.txt", "Loaded a.txt"))
	c.Push(docNotice(notify.LevelInfo, notify.EventLoad, "b.txt", "Loaded b.txt"))

	assert.Len(t, c.Toasts(), 2)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range maxToasts + 2 {
		c.Push(docNotice(notify.LevelInfo, notify.EventLoad, string(rune('a'+i))+".txt", time.Duration(i).String()))
	}

	assert.Len(t, c.Toasts(), maxToasts)
	assert.Equal(t, "2ns", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(docNotice(notify.LevelInfo, notify.EventSave, "a.txt", "Saved a.txt"))
	c.Push(docNotice(notify.LevelError, notify.EventSave, "b.txt", "Save failed"))

	c.Tick(toastTTL(notify.LevelInfo))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "Save failed", c.Toasts()[0].notification.Message, "errors outlive confirmations")
}

func TestToastController_DismissDocument(t *testing.T) {
	c := NewToastController()
	c.Push(docNotice(notify.LevelWarning, notify.EventReload, "a.txt", "a.txt changed on disk"))
	c.Push(docNotice(notify.LevelInfo, notify.EventLoad, "b.txt", "Loaded b.txt"))

	c.DismissDocument("a.txt")

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "b.txt", c.Toasts()[0].notification.Document)
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(docNotice(notify.LevelInfo, notify.EventLoad, "a.txt", "a"))
	c.Push(docNotice(notify.LevelInfo, notify.EventLoad, "b.txt", "b"))

	c.DismissAll()

	assert.False(t, c.HasToasts())
}

func TestToastView_Overlay(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	bg := "background"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24), "no toasts leaves background untouched")

	c.Push(docNotice(notify.LevelError, notify.EventSave, "a.txt", "save failed"))
	lines := make([]string, 24)
	for i := range lines {
		lines[i] = strings.Repeat(" ", 80)
	}
	out := ansi.Strip(v.Overlay(strings.Join(lines, "\n"), 80, 24))

	assert.Contains(t, out, "x save failed")
}
