// Package transform provides the execution-time registry for the named value
// transforms referenced by CAST ... USING clauses.
//
// The command language carries transform names as plain strings; nothing is
// resolved at parse time. When the migration engine applies a cast rule it
// resolves the name against a Registry and fails with TransformNotFoundError
// if no function is registered under it.
//
//	registry := transform.NewRegistry()
//	registry.Register("strip_prefix", func(v *string) (*string, error) { ... })
//
//	fn, err := registry.Resolve("zero_dates_to_null")
package transform
