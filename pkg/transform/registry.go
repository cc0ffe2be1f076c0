package transform

import (
	"fmt"
	"sort"
)

type (
	// Func transforms a single source value on its way into PostgreSQL. A nil
	// input or output represents SQL NULL.
	Func func(value *string) (*string, error)

	// Registry maps transform names (as written in CAST ... USING clauses) to
	// functions. Names are resolved at execution time only; the parser carries
	// them as plain strings.
	//
	// A Registry is not safe for concurrent registration; register everything
	// up front, then share it read-only.
	Registry struct {
		funcs map[string]Func
	}
)

// NewRegistry returns a registry seeded with the built-in transforms.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, len(builtins))}
	for name, fn := range builtins {
		r.funcs[name] = fn
	}

	return r
}

// Register adds or replaces a named transform.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Resolve looks a transform up by name. A miss is a TransformNotFoundError,
// the execution-time counterpart of an unresolvable USING clause.
func (r *Registry) Resolve(name string) (Func, error) {
	if fn, ok := r.funcs[name]; ok {
		return fn, nil
	}

	return nil, &TransformNotFoundError{Name: name}
}

// Names returns the sorted names of all registered transforms.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// TransformNotFoundError reports a USING clause naming a transform that is
// not registered.
type TransformNotFoundError struct {
	Name string
}

func (e *TransformNotFoundError) Error() string {
	return fmt.Sprintf("transform function not found: %s", e.Name)
}
