// Package diag collects documentation-quality warnings. Warnings are
// advisory: they flag schemas that will render with placeholder cells, but
// they never stop a document from being generated.
package diag

import "log/slog"

// Warning categories.
const (
	MissingDoc         = "missing-doc"         // record or enum without documentation text
	MissingDescription = "missing-description" // field without a description
	IncompleteType     = "incomplete-type"     // field or container missing a type argument
)

// Sink accepts documentation-quality warnings.
type Sink interface {
	Warn(category, message string)
}

// LogSink reports warnings through a structured logger.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Warn(category, message string) {
	s.log.Warn(message, "category", category)
}

// Warning is one recorded diagnostic.
type Warning struct {
	Category string
	Message  string
}

// Recorder keeps warnings in memory, mostly for tests.
type Recorder struct {
	Warnings []Warning
}

func (r *Recorder) Warn(category, message string) {
	r.Warnings = append(r.Warnings, Warning{Category: category, Message: message})
}

type discard struct{}

func (discard) Warn(string, string) {}

// Discard drops all warnings.
var Discard Sink = discard{}
