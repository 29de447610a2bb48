// Package generator turns a keyboard model into layout constraints.
//
// A pass runs four phases against an element registry:
//
//  1. edges: the four edge spacers are created and pinned to the container
//  2. row gaps: vertical spacers between the rows
//  3. key gaps: horizontal spacers between the keys of each row, placed by
//     the row's role
//  4. keys: the keys are chained between their gaps and sized relative to
//     the canonical key key0x0
//
// The generator is a pure function of its inputs. Running it twice over
// fresh registries produces the same constraints in the same order.
package generator
