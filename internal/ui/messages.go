package ui

import (
	"dsaexplorer/internal/eventbus"
	"dsaexplorer/internal/playground"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// runResultMsg carries the outcome of a playground run
type runResultMsg struct {
	seq    int
	result playground.Result
	err    error
}

// pagerMsg is sent when the external pager exits
type pagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
