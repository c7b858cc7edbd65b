package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

// Factory builds the handler set of one resource type around a shared client.
type Factory func(client *entityresolution.Client, logger *slog.Logger) cfn.RawHandler

type Metadata struct {
	Name        string
	Description string
	// Identifier is the model property that names a resource in requests.
	Identifier string
	References []string
}

// TypeHierarchy is a CloudFormation type name split into command path segments.
type TypeHierarchy struct {
	Service  string
	Resource string
}

type RegistryEntry struct {
	TypeName      string
	Metadata      Metadata
	TypeHierarchy TypeHierarchy
	New           Factory
}

type HandlerRegistry struct {
	mu        sync.RWMutex
	entries   map[string]RegistryEntry // type name -> entry
	hierarchy map[string][]string      // service -> []type name
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		entries:   make(map[string]RegistryEntry),
		hierarchy: make(map[string][]string),
	}
}

var Registry = NewHandlerRegistry()

// ParseTypeName splits AWS::<Service>::<Resource> into lower-case command segments.
func ParseTypeName(typeName string) (TypeHierarchy, error) {
	parts := strings.Split(typeName, "::")
	if len(parts) != 3 || parts[0] != "AWS" || parts[1] == "" || parts[2] == "" {
		return TypeHierarchy{}, fmt.Errorf("malformed resource type name %q", typeName)
	}
	return TypeHierarchy{
		Service:  strings.ToLower(parts[1]),
		Resource: strings.ToLower(parts[2]),
	}, nil
}

// Register adds a resource type. It is called from package init functions, so a malformed or
// duplicate type name panics.
func (r *HandlerRegistry) Register(typeName string, metadata Metadata, factory Factory) {
	hierarchy, err := ParseTypeName(typeName)
	if err != nil {
		panic(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[typeName]; exists {
		panic(fmt.Sprintf("resource type %s registered twice", typeName))
	}

	r.entries[typeName] = RegistryEntry{
		TypeName:      typeName,
		Metadata:      metadata,
		TypeHierarchy: hierarchy,
		New:           factory,
	}
	r.hierarchy[hierarchy.Service] = append(r.hierarchy[hierarchy.Service], typeName)
}

// GetRegistryEntry finds a resource type by its full type name (any case) or by its
// lower-case resource segment, e.g. "matchingworkflow".
func (r *HandlerRegistry) GetRegistryEntry(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.entries[name]; ok {
		return entry, true
	}
	for typeName, entry := range r.entries {
		if strings.EqualFold(typeName, name) || entry.TypeHierarchy.Resource == strings.ToLower(name) {
			return entry, true
		}
	}
	return RegistryEntry{}, false
}

// TypeNames lists every registered type name in sorted order.
func (r *HandlerRegistry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.entries))
}

// GetHierarchy returns a copy of service -> sorted type names.
func (r *HandlerRegistry) GetHierarchy() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]string, len(r.hierarchy))
	for service, names := range r.hierarchy {
		result[service] = slices.Sorted(slices.Values(names))
	}
	return result
}

func Register(typeName string, metadata Metadata, factory Factory) {
	Registry.Register(typeName, metadata, factory)
}

func GetRegistryEntry(name string) (RegistryEntry, bool) {
	return Registry.GetRegistryEntry(name)
}

func TypeNames() []string {
	return Registry.TypeNames()
}

func GetHierarchy() map[string][]string {
	return Registry.GetHierarchy()
}
