// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package diag receives failures observed while constructing the fast byte
// operations engine and records them for operators. It decides whether a
// failure is a benign environment limitation (the common case: the host
// simply cannot support unchecked word access) or something unexpected worth
// a louder record. Nothing here ever propagates an error back to the caller.
package diag

import (
	"errors"
	"log/slog"
)

// ErrEnvironment marks failures caused by a host limitation rather than a
// defect. Constructors wrap their capability errors with it so the inspector
// can classify without string matching.
var ErrEnvironment = errors.New("environment limitation")

// Inspector receives the causal failure when the fast engine cannot be
// constructed. Implementations must not panic; the selector shields itself
// regardless.
type Inspector interface {
	InspectError(err error)
}

type logInspector struct {
	log *slog.Logger
}

// Default returns an inspector that records failures through slog.
func Default() Inspector {
	return &logInspector{log: slog.Default()}
}

func (l *logInspector) InspectError(err error) {
	if errors.Is(err, ErrEnvironment) {
		l.log.Warn("fast byte operations unavailable, using portable engine", "error", err)
		return
	}
	l.log.Error("unexpected failure constructing fast byte operations, using portable engine", "error", err)
}
