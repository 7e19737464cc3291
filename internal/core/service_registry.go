package core

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

type RegisterRequest struct {
	// Class is the implementation class; its descriptor contributes
	// interfaces and default properties. Leave Name empty to register a
	// plain service without metadata.
	Class      types.Class
	Interfaces []string
	Service    any
	Properties types.Properties
}

type registration struct {
	ref     types.ServiceReference
	service any
}

// ServiceRegistry is an in-memory service registry for tests. Component
// metadata is read on every registration. Safe for concurrent use.
type ServiceRegistry struct {
	reader ComponentReader
	config ports.ConfigurationPort

	mu       sync.RWMutex
	lastID   int
	services map[int]registration
}

// NewServiceRegistry creates a registry. config may be nil when no
// configuration overrides apply.
func NewServiceRegistry(metadata ports.MetadataPort, config ports.ConfigurationPort) *ServiceRegistry {
	return &ServiceRegistry{
		reader:   NewComponentReader(metadata),
		config:   config,
		services: map[int]registration{},
	}
}

// Register adds a service. Properties are layered as: descriptor defaults,
// then configuration for the class pid, then the request's own properties.
// service.id is always assigned by the registry.
func (r *ServiceRegistry) Register(ctx context.Context, req RegisterRequest) (types.ServiceReference, error) {
	if req.Service == nil {
		return types.ServiceReference{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service object is required")
	}

	className := strings.TrimSpace(req.Class.Name)
	interfaces := types.ServiceInterfaces{}
	for _, name := range req.Interfaces {
		if strings.TrimSpace(name) != "" {
			interfaces.Add(name)
		}
	}
	props := types.Properties{}

	if className != "" {
		meta, err := r.reader.Read(ctx, req.Class)
		if err != nil {
			return types.ServiceReference{}, err
		}
		for name := range meta.Interfaces {
			interfaces.Add(name)
		}
		for name, value := range meta.Properties {
			props[name] = value
		}
		if r.config != nil {
			for name, value := range r.config.Properties(className) {
				props[name] = value
			}
		}
	}
	for name, value := range req.Properties {
		props[name] = value
	}

	if len(interfaces) == 0 {
		return types.ServiceReference{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service declares no interfaces: " + className)
	}

	r.mu.Lock()
	r.lastID++
	id := r.lastID
	props[types.PropertyServiceID] = types.IntegerValue(id)
	ref := types.ServiceReference{
		ID:         id,
		Class:      className,
		Interfaces: interfaces.Sorted(),
		Properties: props,
	}
	r.services[id] = registration{ref: ref, service: req.Service}
	r.mu.Unlock()

	log.Ctx(ctx).Debug().
		Int("id", id).
		Str("class", className).
		Strs("interfaces", ref.Interfaces).
		Msg("service registered")
	return cloneReference(ref), nil
}

// GetServiceReference returns the best match for iface: highest
// service.ranking, then lowest service.id.
func (r *ServiceRegistry) GetServiceReference(iface string) (types.ServiceReference, bool) {
	refs := r.GetServiceReferences(iface)
	if len(refs) == 0 {
		return types.ServiceReference{}, false
	}
	return refs[0], true
}

// GetServiceReferences returns every registration providing iface, best
// match first.
func (r *ServiceRegistry) GetServiceReferences(iface string) []types.ServiceReference {
	r.mu.RLock()
	var refs []types.ServiceReference
	for _, reg := range r.services {
		if providesInterface(reg.ref, iface) {
			refs = append(refs, cloneReference(reg.ref))
		}
	}
	r.mu.RUnlock()

	sort.Slice(refs, func(i, j int) bool {
		ri, rj := refs[i].Ranking(), refs[j].Ranking()
		if ri != rj {
			return ri > rj
		}
		return refs[i].ID < refs[j].ID
	})
	return refs
}

func (r *ServiceRegistry) GetService(ref types.ServiceReference) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.services[ref.ID]
	if !ok {
		return nil, false
	}
	return reg.service, true
}

func (r *ServiceRegistry) Unregister(ctx context.Context, id int) error {
	r.mu.Lock()
	reg, ok := r.services[id]
	if ok {
		delete(r.services, id)
	}
	r.mu.Unlock()
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("service is not registered")
	}
	log.Ctx(ctx).Debug().Int("id", id).Str("class", reg.ref.Class).Msg("service unregistered")
	return nil
}

// Len returns the number of live registrations.
func (r *ServiceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

func providesInterface(ref types.ServiceReference, iface string) bool {
	for _, name := range ref.Interfaces {
		if name == iface {
			return true
		}
	}
	return false
}

func cloneReference(ref types.ServiceReference) types.ServiceReference {
	ref.Interfaces = append([]string(nil), ref.Interfaces...)
	ref.Properties = ref.Properties.Clone()
	return ref
}
