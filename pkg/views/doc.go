// Package views declares the entries an admin panel is built from.
//
// An Entry is one of four variants:
//
//   - View renders a template for every request.
//   - FormView binds a forms.Model and dispatches GET and POST to hooks whose
//     results are rendered through the view template.
//   - LinkView is a navigation link. It is never routed.
//   - DropDown groups routable views under one navigation entry.
//
// The set is closed. Code branching on the variant switches on Entry.Kind and
// must handle every Kind.
package views
