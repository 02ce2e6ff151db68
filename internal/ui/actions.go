package ui

import (
	"strings"

	"Scribble/internal/surface"

	"fyne.io/fyne/v2"
)

// Action is a discrete user intent forwarded from menus, shortcuts and the
// toolbar to the shell.
type Action int

const (
	ActionOpen Action = iota
	ActionSaveAs
	ActionPrint
	ActionExit
	ActionPenColor
	ActionPenWidth
	ActionClear
	ActionAbout
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionSaveAs:
		return "save-as"
	case ActionPrint:
		return "print"
	case ActionExit:
		return "exit"
	case ActionPenColor:
		return "pen-color"
	case ActionPenWidth:
		return "pen-width"
	case ActionClear:
		return "clear"
	case ActionAbout:
		return "about"
	}
	return "unknown"
}

// handler is the set of shell operations an Action can reach.
type handler interface {
	open()
	saveAs(format string)
	print()
	exit()
	penColor()
	penWidth()
	clear()
	about()
}

// dispatch routes a to h. format is only used by ActionSaveAs.
func dispatch(h handler, a Action, format string) {
	switch a {
	case ActionOpen:
		h.open()
	case ActionSaveAs:
		h.saveAs(format)
	case ActionPrint:
		h.print()
	case ActionExit:
		h.exit()
	case ActionPenColor:
		h.penColor()
	case ActionPenWidth:
		h.penWidth()
	case ActionClear:
		h.clear()
	case ActionAbout:
		h.about()
	}
}

// menuEntry is one row of the menu table. Entries with the same menu and a
// non-empty submenu are grouped under that submenu.
type menuEntry struct {
	menu    string
	submenu string
	label   string
	action  Action
	format  string
	key     fyne.KeyName // Ctrl/Cmd shortcut, if any
}

func menuEntries() []menuEntry {
	entries := []menuEntry{
		{menu: "File", label: "Open...", action: ActionOpen, key: fyne.KeyO},
	}
	for _, f := range surface.Formats() {
		entries = append(entries, menuEntry{
			menu:    "File",
			submenu: "Save As",
			label:   strings.ToUpper(f) + "...",
			action:  ActionSaveAs,
			format:  f,
		})
	}
	return append(entries,
		menuEntry{menu: "File", label: "Print...", action: ActionPrint, key: fyne.KeyP},
		menuEntry{menu: "File", label: "Exit", action: ActionExit, key: fyne.KeyQ},
		menuEntry{menu: "Options", label: "Pen Color...", action: ActionPenColor},
		menuEntry{menu: "Options", label: "Pen Width...", action: ActionPenWidth},
		menuEntry{menu: "Options", label: "Clear Screen", action: ActionClear, key: fyne.KeyL},
		menuEntry{menu: "Help", label: "About", action: ActionAbout},
	)
}
