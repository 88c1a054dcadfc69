package dispatchers

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/platform-cli/internal/usage"
)

// DefaultCommand runs when no command name is given.
const DefaultCommand = "welcome"

// Registry maps command names and aliases to descriptors and remembers
// registration order. It is filled once at startup.
type Registry struct {
	byName  map[string]*Descriptor
	byAlias map[string]*Descriptor
	order   []*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]*Descriptor),
		byAlias: make(map[string]*Descriptor),
	}
}

// Register adds d. A name or alias that is already taken by any command is
// a configuration error.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.Name == "" {
		return usage.ConfigError(errors.New("empty command name"), "Invalid command registration")
	}
	if d.Command == nil {
		return usage.ConfigError(fmt.Errorf("command %q has no implementation", d.Name), "Invalid command registration")
	}
	if err := r.checkFree(d.Name); err != nil {
		return err
	}
	seen := map[string]bool{d.Name: true}
	for _, alias := range d.Aliases {
		if seen[alias] {
			return usage.ConfigError(fmt.Errorf("alias %q repeated", alias), "Invalid registration of command %q", d.Name)
		}
		seen[alias] = true
		if err := r.checkFree(alias); err != nil {
			return err
		}
	}

	r.byName[d.Name] = d
	for _, alias := range d.Aliases {
		r.byAlias[alias] = d
	}
	r.order = append(r.order, d)
	return nil
}

func (r *Registry) checkFree(name string) error {
	if existing, ok := r.byName[name]; ok {
		return usage.ConfigError(fmt.Errorf("name %q already used by command %q", name, existing.Name), "Duplicate command registration")
	}
	if existing, ok := r.byAlias[name]; ok {
		return usage.ConfigError(fmt.Errorf("name %q already used as an alias of %q", name, existing.Name), "Duplicate command registration")
	}
	return nil
}

// Lookup finds a command by exact name, then by alias. An empty name
// resolves to the default command.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	if name == "" {
		name = DefaultCommand
	}
	if d, ok := r.byName[name]; ok {
		return d, true
	}
	d, ok := r.byAlias[name]
	return d, ok
}

// All returns the descriptors in registration order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns every visible command name and alias, in registration
// order.
func (r *Registry) Names() []string {
	var names []string
	for _, d := range r.order {
		if d.Hidden {
			continue
		}
		names = append(names, d.Name)
		names = append(names, d.Aliases...)
	}
	return names
}
