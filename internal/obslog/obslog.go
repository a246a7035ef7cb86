// Package obslog wraps github.com/hashicorp/go-hclog for the engine and
// batch driver. There is no package-global logger: every component that
// needs one takes a Logger field explicitly. The proof engine does not use
// it: a proof's execution log is kept on the proof tree itself, and each
// accessibility graph keeps its own FlushLog buffer.
package obslog

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

type Logger = hclog.Logger

// New builds a logger named name at level, writing to stderr — the same
// construction shape used throughout hashicorp-nomad's tests and agent
// command wiring.
func New(name string, level hclog.Level) Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: os.Stderr,
	})
}

// Discard is a logger that drops everything, for callers (tests, one-shot
// CLI runs) that don't want the ceremony of wiring a real sink.
func Discard() Logger {
	return hclog.NewNullLogger()
}
