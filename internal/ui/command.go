package ui

import tea "github.com/charmbracelet/bubbletea"

// command is one discrete operator action. Every input event maps to exactly
// one command; events without a binding map to cmdIgnore.
type command int

const (
	cmdIgnore command = iota
	cmdQuit
	cmdAcceptLocal
	cmdAcceptIncoming
	cmdWrite
	cmdCursorUp
	cmdCursorDown
)

func commandForKey(msg tea.KeyMsg) command {
	switch msg.String() {
	case "q", "ctrl+c":
		return cmdQuit
	case "l":
		return cmdAcceptLocal
	case "r":
		return cmdAcceptIncoming
	case "w":
		return cmdWrite
	case "up", "k":
		return cmdCursorUp
	case "down", "j":
		return cmdCursorDown
	}
	return cmdIgnore
}
