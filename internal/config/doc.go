// Package config loads layout parameters from disk.
//
// A configuration file has up to three sections:
//
//	metrics:   numeric layout parameters (leftGap, keyWidth, ...)
//	colors:    the nine palette colors
//	keyboard:  an optional keyboard model replacing the built-in one
//
// Files are YAML, TOML or JSON, chosen by extension. Every section has a
// closed key set; a misspelled key is an error rather than a silently
// ignored value. Values that are not set keep their defaults.
package config
