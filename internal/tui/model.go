package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/mindmap/internal/core/config"
	"github.com/hay-kot/mindmap/internal/core/logging"
	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/core/notify"
	"github.com/hay-kot/mindmap/internal/editor"
	"github.com/hay-kot/mindmap/internal/tui/components"
	tuinotify "github.com/hay-kot/mindmap/internal/tui/notify"
)

// UIState represents which layer of the TUI receives input.
type UIState int

const (
	stateNormal UIState = iota
	stateNotice
	stateHelp
	statePrompt
)

// Options configures the TUI.
type Options struct {
	Path  string // document opened at start; empty starts a fresh map
	Watch bool   // reload the document when it changes on disk
}

// pressInfo remembers where the current pointer gesture started.
type pressInfo struct {
	active bool
	nodeID string
	button tea.MouseButton
}

// Model is the Bubble Tea model for the mind-map editor.
type Model struct {
	cfg   *config.Config
	svc   *editor.Service
	ctrl  *mindmap.Controller
	store *mindmap.Store
	vp    *CanvasViewport
	keys  KeyMap
	log   zerolog.Logger

	bus       *tuinotify.Bus
	toasts    *ToastController
	toastView *ToastView

	state  UIState
	notice *components.NoticeDialog
	help   *components.HelpDialog
	prompt *components.Prompt

	// input edits the node named by editingID.
	input     textinput.Model
	editingID string

	press  pressInfo
	sized  bool
	loaded bool

	docPath string
	watch   bool
	watcher *editor.Watcher
}

// New creates the model. vp must be the viewport the service's store was
// created with.
func New(cfg *config.Config, svc *editor.Service, vp *CanvasViewport, bus *tuinotify.Bus, opts Options) Model {
	toasts := NewToastController()
	bus.Subscribe(toasts.Push)

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = cfg.Text.Hint
	input.SetWidth(max(cfg.Layout.NodeWidth-3, 1))
	input.SetStyles(components.InputStyles())

	ctrl := svc.Controller()
	m := Model{
		cfg:       cfg,
		svc:       svc,
		ctrl:      ctrl,
		store:     ctrl.Store(),
		vp:        vp,
		keys:      NewKeyMap(cfg.Keys),
		log:       logging.Component("tui"),
		bus:       bus,
		toasts:    toasts,
		toastView: NewToastView(toasts),
		input:     input,
		docPath:   opts.Path,
		watch:     opts.Watch,
	}

	if m.watch && m.docPath != "" {
		w, err := editor.NewWatcher(m.docPath)
		if err != nil {
			m.log.Warn().Err(err).Str("path", m.docPath).Msg("watch failed")
		} else {
			m.watcher = w
		}
	}

	return m
}

// Init starts loading the initial document and watching it.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.docPath != "" {
		cmds = append(cmds, readDocument(m.svc, m.docPath, false))
	}
	cmds = append(cmds, waitForChange(m.watcher))
	return tea.Batch(cmds...)
}

// Close releases resources held by the model.
func (m Model) Close() {
	m.closeWatcher()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.BlurMsg:
		m.ctrl.Tracker().PointerLeave()
		if m.press.active {
			m.ctrl.EndGesture()
			m.press = pressInfo{}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyPressMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.closeWatcher()
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case documentReadMsg:
		cmds = append(cmds, m.handleDocumentRead(msg))

	case documentChangedMsg:
		cmds = append(cmds, m.handleDocumentChanged(msg))

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
		} else {
			cmds = append(cmds, scheduleToastTick())
		}

	default:
		// Cursor blinks.
		if m.editingID != "" {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.prompt != nil {
			cmds = append(cmds, m.prompt.Update(msg))
		}
	}

	cmds = append(cmds, m.syncEditor())
	if m.toasts.HasToasts() && !m.toasts.Ticking() {
		m.toasts.SetTicking(true)
		cmds = append(cmds, scheduleToastTick())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.vp.Resize(width, height)

	if !m.sized && !m.loaded && m.store.Len() == 1 {
		// The root was placed before the terminal size was known.
		root := m.store.Root()
		pos := m.store.Layout().RootPosition(m.vp.Bounds())
		if root.Position() != pos {
			_ = m.store.Update(mindmap.RootID, mindmap.MovePatch(pos))
		}
	}
	m.sized = true

	if moved := m.store.ClampAll(); moved > 0 {
		m.log.Debug().Int("moved", moved).Int("width", width).Int("height", height).Msg("nodes clamped to canvas")
	}

	if m.help != nil {
		m.help = components.NewHelpDialog("Help", m.keys.HelpSections(), m.helpNotes(), width, height)
	}
}

// syncEditor binds the text input to the node in edit mode.
func (m *Model) syncEditor() tea.Cmd {
	st := m.ctrl.State()
	if st.EditingID == m.editingID {
		return nil
	}

	m.editingID = st.EditingID
	if st.EditingID == "" {
		m.input.Blur()
		return nil
	}

	m.input.SetValue(st.EditingText)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch m.state {
	case stateNotice:
		switch msg.String() {
		case "enter", "esc", "space":
			m.notice = nil
			m.state = stateNormal
		}
		return nil, false

	case stateHelp:
		switch {
		case msg.String() == "up" || msg.String() == "k":
			m.help.ScrollUp()
		case msg.String() == "down" || msg.String() == "j":
			m.help.ScrollDown()
		case msg.String() == "esc" || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit):
			m.help = nil
			m.state = stateNormal
		}
		return nil, false

	case statePrompt:
		return m.handlePromptKey(msg), false
	}

	if m.editingID != "" {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help = components.NewHelpDialog("Help", m.keys.HelpSections(), m.helpNotes(), m.vp.width, m.vp.height)
		m.state = stateHelp
	case key.Matches(msg, m.keys.Add):
		m.ctrl.Add()
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Edit):
		if id := m.ctrl.State().SelectedID; id != "" {
			m.ctrl.StartEdit(id)
		}
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Open):
		m.prompt = components.NewPrompt("Open:", m.docPath, "path to mind map", m.vp.width)
		m.state = statePrompt
	case key.Matches(msg, m.keys.Deselect):
		m.ctrl.ClickBackground()
		m.toasts.DismissAll()
	}
	return nil, false
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case msg.String() == "ctrl+c":
		return nil, true
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.CommitEdit()
		return nil, false
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelEdit()
		return nil, false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetEditingText(m.input.Value())
	return cmd, false
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.prompt = nil
		m.state = stateNormal
		return nil
	case "enter":
		path := strings.TrimSpace(m.prompt.Value())
		m.prompt = nil
		m.state = stateNormal
		if path == "" {
			return nil
		}
		return readDocument(m.svc, path, false)
	}
	return m.prompt.Update(msg)
}

func (m *Model) deleteSelected() {
	if err := m.ctrl.DeleteSelected(); err != nil {
		if errors.Is(err, mindmap.ErrProtectedNode) {
			m.notice = components.NewNoticeDialog("Cannot delete", "The central topic cannot be deleted.")
			m.state = stateNotice
			return
		}
		m.bus.Document(m.docPath).Errorf(notify.EventEdit, "Delete failed: %v", err)
	}
}

// helpNotes returns the markdown shown below the key tables.
func (m *Model) helpNotes() string {
	var b strings.Builder
	b.WriteString("## Mouse\n\n")
	b.WriteString("- Click a node to select it; click its text to edit it.\n")
	b.WriteString("- Drag a node to move it.\n")
	b.WriteString("- Click empty canvas to clear the selection.\n\n")

	history, err := m.bus.DocumentHistory(m.docPath)
	if err != nil || len(history) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "## Recent activity on %s\n\n", documentName(m.docPath))
	for i, n := range history {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "- %s **%s** %s\n", n.CreatedAt.Format("15:04:05"), n.Event, n.Message)
	}
	return b.String()
}

// DocumentPath returns the path of the open document, if any.
func (m Model) DocumentPath() string {
	return m.docPath
}

func documentName(path string) string {
	if path == "" {
		return "untitled"
	}
	return filepath.Base(path)
}
