// Package logger is the central diagnostic sink for the core: a thin,
// package-level wrapper around logrus that tags every entry with the
// subsystem it came from. It is not exposed as a second error channel — the
// core's only error channel is the invalid-instruction callback (see the
// cpu package) — this is purely for observability, mirroring how the
// pack's own emulators tag entries with the module that produced them.
package logger

import "github.com/sirupsen/logrus"

var std = logrus.New()

func init() {
	std.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: false})
}

// Tag returns a module-scoped logger. Callers hold onto the returned value
// rather than passing the module name to every call site.
func Tag(module string) *Entry {
	return &Entry{module: module}
}

// Entry is a module-tagged logging handle, cheap enough to keep as a field
// on a long-lived collaborator (the CPU driver keeps one).
type Entry struct {
	module string
}

func (e *Entry) field() *logrus.Entry {
	return std.WithField("module", e.module)
}

// Debugf logs a formatted diagnostic at debug level.
func (e *Entry) Debugf(format string, args ...interface{}) {
	e.field().Debugf(format, args...)
}

// Warnf logs a formatted diagnostic at warn level, used for conditions the
// core can proceed past but that a host likely wants to know about
// (invalid opcodes, KIL execution).
func (e *Entry) Warnf(format string, args ...interface{}) {
	e.field().Warnf(format, args...)
}

// SetOutput redirects every Entry's output; primarily for tests that want
// to assert on emitted diagnostics.
func SetOutput(w interface {
	Write(p []byte) (n int, err error)
}) {
	std.SetOutput(w)
}

// SetLevel adjusts the minimum level logged, matching logrus's own scale.
func SetLevel(level logrus.Level) {
	std.SetLevel(level)
}
