// Package debug provides optional file-based debug logging.
//
// When the KBD_DEBUG environment variable is set to a file path, layout
// passes are logged to that file. Otherwise logging is a no-op.
package debug
