package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/mindmap/internal/core/config"
	"github.com/hay-kot/mindmap/internal/tui/components"
)

// KeyMap holds the canvas key bindings built from config.
type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Edit   key.Binding
	Save   key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Fixed bindings, not configurable.
	Deselect key.Binding
	Commit   key.Binding
	Cancel   key.Binding
}

// NewKeyMap builds key bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	bind := func(ks []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), desc),
		)
	}

	return KeyMap{
		Add:    bind(keys.Add, "add node"),
		Delete: bind(keys.Delete, "delete node"),
		Edit:   bind(keys.Edit, "edit node"),
		Save:   bind(keys.Save, "save"),
		Open:   bind(keys.Open, "open file"),
		Help:   bind(keys.Help, "help"),
		Quit:   bind(keys.Quit, "quit"),

		Deselect: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit text")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Edit, k.Save, k.Open, k.Help, k.Quit}
}

// HelpSections returns the bindings grouped for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	entry := func(b key.Binding) components.HelpEntry {
		h := b.Help()
		return components.HelpEntry{Key: h.Key, Desc: h.Desc}
	}

	return []components.HelpDialogSection{
		{
			Title:   "Canvas",
			Entries: []components.HelpEntry{entry(k.Add), entry(k.Delete), entry(k.Edit), entry(k.Deselect)},
		},
		{
			Title:   "Editing",
			Entries: []components.HelpEntry{entry(k.Commit), entry(k.Cancel)},
		},
		{
			Title:   "Document",
			Entries: []components.HelpEntry{entry(k.Save), entry(k.Open), entry(k.Help), entry(k.Quit)},
		},
	}
}
