// Package constraint defines linear layout constraints between element
// attributes and the ordered sets the generator emits.
//
// A constraint reads
//
//	first.attr REL multiplier*second.attr + constant  @priority
//
// and is absolute when it has no second anchor. Constraints are plain
// comparable values, so two sets can be compared as multisets.
package constraint
