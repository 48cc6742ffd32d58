package theme

import "fmt"

// Registry holds the built-in themes followed by any custom themes, in the
// order they were added.
type Registry struct {
	themes []Theme
}

// NewRegistry returns a registry with the built-ins plus custom. A custom
// theme may not reuse a name already in the registry.
func NewRegistry(custom ...Theme) (*Registry, error) {
	r := &Registry{themes: Builtin()}
	for _, t := range custom {
		if _, ok := r.Lookup(t.Name); ok {
			return nil, fmt.Errorf("theme %q is already defined", t.Name)
		}
		r.themes = append(r.themes, t)
	}
	return r, nil
}

// Names returns every theme name in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.themes))
	for i, t := range r.themes {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a theme by exact name.
func (r *Registry) Lookup(name string) (Theme, bool) {
	for _, t := range r.themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Get returns the named theme, falling back to the default theme.
func (r *Registry) Get(name string) Theme {
	if t, ok := r.Lookup(name); ok {
		return t
	}
	return Default()
}
