// Package notify surfaces user-facing notices. The slog notifier is
// the default channel; a desktop or push channel can replace it behind
// the same interface.
package notify

import (
	"log/slog"

	"salepoint/internal/domain/service"
)

// slogNotifier writes notices to the structured log at warn level so
// they stand out from routine request traffic.
type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier is the constructor for slogNotifier.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

// Notify emits the message as a notice log entry.
func (n *slogNotifier) Notify(message string) {
	n.logger.Warn("User notice", slog.String("message", message))
}
