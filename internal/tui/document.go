package tui

import (
	"context"
	"errors"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/core/notify"
	"github.com/hay-kot/mindmap/internal/editor"
)

// documentReadMsg carries file content read off the UI loop.
type documentReadMsg struct {
	path    string
	content string
	err     error
	reload  bool // triggered by the watcher rather than the user
}

// documentChangedMsg is sent when the watched document changes on disk.
type documentChangedMsg struct {
	watcher *editor.Watcher
	path    string
}

// readDocument reads path in the background. Overlapping reads are not
// ordered; whichever completes last is applied last.
func readDocument(svc *editor.Service, path string, reload bool) tea.Cmd {
	return func() tea.Msg {
		content, err := svc.Read(context.Background(), path)
		return documentReadMsg{path: path, content: content, err: err, reload: reload}
	}
}

// waitForChange blocks until w reports a change. It returns nil once w is
// closed.
func waitForChange(w *editor.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return documentChangedMsg{watcher: w, path: ev.Path}
	}
}

func (m *Model) handleDocumentRead(msg documentReadMsg) tea.Cmd {
	name := filepath.Base(msg.path)
	doc := m.bus.Document(msg.path)

	ev := notify.EventLoad
	if msg.reload {
		ev = notify.EventReload
	}

	if msg.err != nil {
		doc.Errorf(ev, "Open failed: %v", msg.err)
		return nil
	}

	if msg.reload {
		if msg.content == m.ctrl.Save() {
			return nil
		}
		st := m.ctrl.State()
		if st.EditingID != "" || st.Dragging != nil {
			doc.Warnf(ev, "%s changed on disk; press %s to reload", name, m.keys.Open.Help().Key)
			return nil
		}
	}

	err := m.svc.Apply(context.Background(), msg.path, msg.content)
	switch {
	case errors.Is(err, mindmap.ErrEmptyLoad):
		doc.Warnf(ev, "Nothing to load in %s", name)
		return nil
	case err != nil:
		doc.Errorf(ev, "Load failed: %v", err)
		return nil
	}

	m.press = pressInfo{}
	m.loaded = true
	if msg.path != m.docPath {
		m.toasts.DismissDocument(m.docPath)
	}
	if msg.reload {
		doc.Infof(ev, "Reloaded %d nodes from %s", m.store.Len(), name)
	} else {
		doc.Infof(ev, "Loaded %d nodes from %s", m.store.Len(), name)
	}

	if msg.reload || !m.watch || msg.path == m.docPath {
		m.docPath = msg.path
		return nil
	}
	m.docPath = msg.path
	return m.restartWatch()
}

func (m *Model) handleDocumentChanged(msg documentChangedMsg) tea.Cmd {
	if msg.watcher != m.watcher {
		return nil
	}
	return tea.Batch(
		readDocument(m.svc, msg.path, true),
		waitForChange(m.watcher),
	)
}

// restartWatch replaces the watcher with one on the current document.
func (m *Model) restartWatch() tea.Cmd {
	m.closeWatcher()
	if m.docPath == "" {
		return nil
	}

	w, err := editor.NewWatcher(m.docPath)
	if err != nil {
		m.log.Warn().Err(err).Str("path", m.docPath).Msg("watch failed")
		m.bus.Document(m.docPath).Warnf(notify.EventReload, "Cannot watch %s: %v", filepath.Base(m.docPath), err)
		return nil
	}
	m.watcher = w
	return waitForChange(w)
}

func (m *Model) closeWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		m.log.Debug().Err(err).Msg("close watcher")
	}
	m.watcher = nil
}

func (m *Model) save() {
	m.ctrl.CommitEdit()

	doc := m.bus.Document(m.docPath)
	location, err := m.svc.Save(context.Background())
	if err != nil {
		doc.Errorf(notify.EventSave, "Save failed: %v", err)
		return
	}
	doc.Infof(notify.EventSave, "Saved %s", location)
}
