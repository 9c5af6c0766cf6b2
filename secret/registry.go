package secret

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ProviderFactory builds a Provider from its configuration block.
type ProviderFactory func(cfg map[string]any) (Provider, error)

// Registry maps provider names to factories so configuration files can
// select secret providers by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ProviderFactory)}
}

// Register adds a factory under name. Registering the same name twice is
// an error.
func (r *Registry) Register(name string, factory ProviderFactory) error {
	name = strings.TrimSpace(name)
	if name == "" || factory == nil {
		return errors.New("secret provider registration requires a name and a factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("secret provider %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Create instantiates the provider registered under name.
func (r *Registry) Create(name string, cfg map[string]any) (Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("secret provider name is required")
	}

	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("secret provider %q is not registered", name)
	}
	return factory(cfg)
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolver creates the named providers and wraps them in a resolver.
func (r *Registry) Resolver(strict bool, names ...string) (*Resolver, error) {
	providers := make([]Provider, 0, len(names))
	for _, name := range names {
		p, err := r.Create(name, nil)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return NewResolver(strict, providers...), nil
}

// DefaultRegistry is the registry configuration files resolve against.
// The env provider is always available.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	if err := r.Register("env", func(map[string]any) (Provider, error) {
		return NewEnvProvider(), nil
	}); err != nil {
		panic(err)
	}
	return r
}()
