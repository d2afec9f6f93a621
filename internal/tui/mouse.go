package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
)

func toButton(b tea.MouseButton) mindmap.Button {
	switch b {
	case tea.MouseRight:
		return mindmap.ButtonSecondary
	case tea.MouseMiddle:
		return mindmap.ButtonMiddle
	default:
		return mindmap.ButtonPrimary
	}
}

// handleMouse translates terminal mouse events into pointer gestures.
// A gesture runs from press to release; the tracker sees every motion and
// release so a drag keeps following the pointer outside its node.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.state != stateNormal {
		if _, ok := msg.(tea.MouseClickMsg); ok && m.state == stateNotice {
			m.notice = nil
			m.state = stateNormal
		}
		return
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		m.mousePress(msg.Mouse())
	case tea.MouseMotionMsg:
		if m.press.active {
			mouse := msg.Mouse()
			m.ctrl.Tracker().PointerMove(cellCenter(mouse.X, mouse.Y))
		}
	case tea.MouseReleaseMsg:
		m.mouseRelease(msg.Mouse())
	}
}

func (m *Model) mousePress(mouse tea.Mouse) {
	if m.press.active {
		// A press without a release means the release was lost.
		m.ctrl.Tracker().PointerUp()
		m.ctrl.EndGesture()
	}

	n, hit := nodeAt(m.store, mouse.X, mouse.Y)

	// Leaving the editor with the pointer commits it.
	if editing := m.ctrl.State().EditingID; editing != "" && (!hit || n.ID != editing) {
		m.ctrl.CommitEdit()
	}

	if !inCanvas(m.store, mouse.Y) {
		m.press = pressInfo{}
		return
	}

	m.ctrl.BeginGesture()
	m.press = pressInfo{active: true, button: mouse.Button}
	if hit {
		m.press.nodeID = n.ID
		m.ctrl.PressNode(n.ID, toButton(mouse.Button), cellCenter(mouse.X, mouse.Y))
	}
}

func (m *Model) mouseRelease(mouse tea.Mouse) {
	if !m.press.active {
		return
	}
	press := m.press
	m.press = pressInfo{}

	m.ctrl.Tracker().PointerUp()

	if press.button == tea.MouseLeft {
		n, hit := nodeAt(m.store, mouse.X, mouse.Y)
		switch {
		case hit && n.ID == press.nodeID:
			onText := onTextArea(m.store, n, mouse.X, mouse.Y) && !m.ctrl.State().IsEditing(n.ID)
			m.ctrl.ClickNode(n.ID, onText)
		case !hit && press.nodeID == "":
			m.ctrl.ClickBackground()
		}
	}

	m.ctrl.EndGesture()
}
