// Package journald mirrors diagnostics to the systemd journal.
package journald

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/coreos/go-systemd/v22/journal"

	"github.com/modoterra/stampline/pkg/core"
)

// SendFunc matches journal.Send.
type SendFunc func(message string, priority journal.Priority, vars map[string]string) error

// Sink sends every diagnostic record to journald. Records written to the
// output stream are ignored.
type Sink struct {
	send   SendFunc
	logger *slog.Logger
}

// Available reports whether the journal socket can be reached.
func Available() bool {
	return journal.Enabled()
}

// New creates a sink that writes to the local journal.
func New(logger *slog.Logger) *Sink {
	return NewWithSender(journal.Send, logger)
}

// NewWithSender creates a sink using send instead of journal.Send.
func NewWithSender(send SendFunc, logger *slog.Logger) *Sink {
	return &Sink{send: send, logger: logger}
}

func (s *Sink) Name() string { return "journald" }

// Emit forwards rec when it is a diagnostic.
func (s *Sink) Emit(_ context.Context, rec core.Record) error {
	if !rec.Diagnostic() {
		return nil
	}
	vars := map[string]string{
		"STAMPLINE_SEQ":    strconv.FormatInt(rec.Seq, 10),
		"STAMPLINE_REASON": string(rec.Reason),
	}
	if err := s.send(rec.Text, journal.PriErr, vars); err != nil {
		return fmt.Errorf("journal send: %w", err)
	}
	s.logger.Debug("diagnostic sent to journal", "seq", rec.Seq, "reason", rec.Reason)
	return nil
}
