// Package logging provides a unified logging interface for the module.
// It abstracts the underlying logging implementation, allowing consistent
// logging across components while supporting multiple backends. The
// arithmetic core never imports this package directly; only the
// accumulator's growth events log through it, and only when a caller
// opts in.
package logging
