// Package element is the registry of layout elements generated for one
// layout pass.
//
// Every element is addressed by a typed Address (kind, column, row) rather
// than by a formatted name. The registry is an arena: it owns all element
// storage for a pass and hands out integer Handles. A new pass builds a new
// registry; handles are never valid across passes.
package element
