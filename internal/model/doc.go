// Package model describes keyboards as plain data: ordered rows of typed
// key descriptors, each row tagged with the spacing role the layout engine
// applies to it.
//
// Types are re-exported through the root kbd package for public consumption.
package model
