// Package fields describes form inputs declaratively. A Decl is the immutable
// declaration attached to a form model; a Descriptor pairs a Decl with the
// attribute name it was declared under and is what templates receive.
//
// Each kind carries two template references: one used when rendering the
// input inside a form and one used when rendering the value in a data grid.
package fields
