// Package eval bridges jot IR trees to Go values and JSON, and evaluates
// expr-lang expressions against documents.
//
// # Usage
//
//	v, err := eval.Eval(doc, `user.name == "alice"`)
//
//	d, err := eval.MarshalJSON(doc)
//	doc, err = eval.UnmarshalJSON(d)
//
// The format has no numeric variant and no string escapes; FromAny and
// UnmarshalJSON reject numeric values with ErrNumber and strings
// containing '"' with ErrString.
package eval
