// Package alert is the boundary for transient, user-facing messages.
// Services report every operation outcome here with an operation-specific
// message; the underlying cause stays in the diagnostic log.
package alert

import "log"

type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
)

// Alerter is implemented by the presentation layer. Rendering is entirely
// its concern; this package only defines the capability.
type Alerter interface {
	Show(kind Kind, title, message string)
}

// LogAlerter writes alerts to the standard logger. Used by the CLI and as
// the default when no richer surface is wired.
type LogAlerter struct{}

func (LogAlerter) Show(kind Kind, title, message string) {
	log.Printf("[%s] %s: %s", kind, title, message)
}
