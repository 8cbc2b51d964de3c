package flows

import (
	"fmt"
	"sort"
	"sync"

	"podcast-generation-service/application/ports/inbound"
)

type FlowDescription struct {
	FlowType string
	Category string
	Info     inbound.FlowInfo
}

type registeredFlow struct {
	flow     inbound.GenerationFlowPort
	category string
}

// Registry maps flow type names to generation flows. It is constructed once
// at startup and passed by reference to whatever composes flows; there is no
// package-level instance.
type Registry struct {
	mu    sync.RWMutex
	flows map[string]registeredFlow
}

func NewRegistry() *Registry {
	return &Registry{
		flows: make(map[string]registeredFlow),
	}
}

func (r *Registry) Register(flow inbound.GenerationFlowPort, category string) error {
	flowType := flow.FlowType()
	if flowType == "" {
		return fmt.Errorf("flow type must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.flows[flowType]; exists {
		return fmt.Errorf("flow type %q is already registered", flowType)
	}
	r.flows[flowType] = registeredFlow{
		flow:     flow,
		category: category,
	}
	return nil
}

func (r *Registry) Get(flowType string) (inbound.GenerationFlowPort, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.flows[flowType]
	if !ok {
		return nil, false
	}
	return entry.flow, true
}

// Describe returns registered flows sorted by flow type, for stable listing.
func (r *Registry) Describe() []FlowDescription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptions := make([]FlowDescription, 0, len(r.flows))
	for flowType, entry := range r.flows {
		descriptions = append(descriptions, FlowDescription{
			FlowType: flowType,
			Category: entry.category,
			Info:     entry.flow.Info(),
		})
	}
	sort.Slice(descriptions, func(i, j int) bool {
		return descriptions[i].FlowType < descriptions[j].FlowType
	})
	return descriptions
}
