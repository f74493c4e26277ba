// Package tui provides the Bubble Tea models for the interactive shell.
package tui

import (
	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

// resultMsg carries the outcome of one executed command line.
type resultMsg struct {
	input  string
	result command.Result
	err    error
}

// openedMsg reports the outcome of opening a repository in the browser.
type openedMsg struct {
	url string
	err error
}

// ProjectSelectedMsg is emitted when the user selects a project in the picker.
type ProjectSelectedMsg struct {
	Project *domain.Project
}

// QuitMsg is emitted when the user leaves the picker without choosing.
type QuitMsg struct{}
