package provider

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
)

// Creator builds a processor from configuration. Implementations live in
// the provider packages and self-register via init().
type Creator func(cfg Config) (api.ConsultationProcessor, error)

var (
	creatorRegistry = make(map[string]Creator)
	creatorMutex    sync.RWMutex
)

// RegisterProvider registers a creator for a provider type. Called from the
// provider packages' init() functions; importing a provider package is what
// makes its type available.
func RegisterProvider(providerType string, creator Creator) {
	creatorMutex.Lock()
	defer creatorMutex.Unlock()
	creatorRegistry[providerType] = creator
}

// GetCreator returns the creator for a provider type.
func GetCreator(providerType string) (Creator, error) {
	creatorMutex.RLock()
	defer creatorMutex.RUnlock()

	creator, ok := creatorRegistry[providerType]
	if !ok {
		return nil, apperrors.NotFound("provider type", providerType)
	}
	return creator, nil
}

// RegisteredTypes returns all registered provider type names, sorted.
func RegisteredTypes() []string {
	creatorMutex.RLock()
	defer creatorMutex.RUnlock()

	return sortStrings(lo.Keys(creatorRegistry))
}

// Registry holds the constructed processors for one running instance and
// tracks which one is the default.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]api.ConsultationProcessor
	defaultID  string
}

// NewRegistry creates an empty processor registry.
func NewRegistry() *Registry {
	return &Registry{
		processors: make(map[string]api.ConsultationProcessor),
	}
}

// Register adds a processor under its own name. The first registered
// processor becomes the default.
func (r *Registry) Register(p api.ConsultationProcessor) error {
	if p == nil {
		return apperrors.RequiredField("processor")
	}
	name := p.Name()
	if name == "" {
		return apperrors.RequiredField("processor name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processors[name]; exists {
		return apperrors.Newf("provider %q already registered", name)
	}
	r.processors[name] = p

	if r.defaultID == "" {
		r.defaultID = name
	}
	return nil
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (api.ConsultationProcessor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.processors[name]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrProviderNotFound, "%s", name)
	}
	return p, nil
}

// Default returns the default processor.
func (r *Registry) Default() (api.ConsultationProcessor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.defaultID == "" {
		return nil, apperrors.Wrap(apperrors.ErrProviderNotFound, "no providers registered")
	}
	return r.processors[r.defaultID], nil
}

// DefaultName returns the name of the default processor, or "".
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID
}

// SetDefault marks a registered processor as the default.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.processors[name]; !ok {
		return apperrors.Wrapf(apperrors.ErrProviderNotFound, "%s", name)
	}
	r.defaultID = name
	return nil
}

// List returns the names of all registered processors, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortStrings(lo.Keys(r.processors))
}

// Resolve returns the named processor, or the default when name is empty.
func (r *Registry) Resolve(name string) (api.ConsultationProcessor, error) {
	if name == "" {
		return r.Default()
	}
	return r.Get(name)
}

func sortStrings(s []string) []string {
	sort.Strings(s)
	return s
}
