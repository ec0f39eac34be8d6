// Package debug provides optional file-based debug logging for layout passes.
//
// When the ALIGNTABLE_DEBUG environment variable is set to a file path, debug
// events are appended to that file as zerolog JSON lines. Otherwise, logging
// is a no-op.
package debug
