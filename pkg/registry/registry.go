// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"jobsearch-router/internal/agents"
	stderrors "jobsearch-router/internal/common/errors"
)

// Capability describes one agent: how reliable it is, which regions it
// serves, and whether it refuses geography-agnostic queries.
type Capability struct {
	Agent       agents.ID `json:"agent"`
	Reliability float64   `json:"reliability"` // 0-1, used only for tie-break ordering
	Regions     []string  `json:"regions"`     // region names from the catalog; empty means worldwide

	// RequiresScopedGeography marks agents whose backend rejects queries
	// without a concrete geography. Such agents are never selected for
	// unscoped queries.
	RequiresScopedGeography bool `json:"requiresScopedGeography"`

	// CallTimeoutMs overrides the global per-call timeout when positive.
	CallTimeoutMs int `json:"callTimeoutMs,omitempty"`
}

// CallTimeout returns the per-agent timeout override, or 0 when the global
// default applies.
func (c Capability) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutMs) * time.Millisecond
}

// ServesRegion reports whether the agent covers the named region. Worldwide
// agents cover every region.
func (c Capability) ServesRegion(name string) bool {
	if len(c.Regions) == 0 {
		return true
	}
	for _, r := range c.Regions {
		if r == name {
			return true
		}
	}
	return false
}

// Registry is the immutable agent capability registry, built once at startup
// and shared by all concurrent queries without locking.
type Registry struct {
	byAgent map[agents.ID]Capability
}

// New builds a registry from a capability list. Duplicate or unknown agents
// are rejected.
func New(caps []Capability) (*Registry, error) {
	byAgent := make(map[agents.ID]Capability, len(caps))
	for _, c := range caps {
		if !c.Agent.Valid() {
			return nil, fmt.Errorf("unknown agent %q in capability list", c.Agent)
		}
		if _, dup := byAgent[c.Agent]; dup {
			return nil, fmt.Errorf("duplicate capability for agent %q", c.Agent)
		}
		if c.Reliability < 0 || c.Reliability > 1 {
			return nil, fmt.Errorf("agent %q reliability %v out of [0,1]", c.Agent, c.Reliability)
		}
		byAgent[c.Agent] = c
	}
	return &Registry{byAgent: byAgent}, nil
}

// Default returns the compiled-in capability registry.
func Default() *Registry {
	reg, err := New(defaultCapabilities)
	if err != nil {
		// The compiled-in table is validated by tests; this is unreachable
		// outside a bad edit.
		panic(err)
	}
	return reg
}

// registryFile is the on-disk JSON layout.
type registryFile struct {
	Version     string       `json:"version"`
	LastUpdated string       `json:"lastUpdated"`
	Agents      []Capability `json:"agents"`
}

// LoadFile reads, schema-validates and builds a registry from a JSON file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stderrors.NewRegistryLoadFailedError(path, err)
	}

	if err := ValidateJSON(data); err != nil {
		return nil, stderrors.NewRegistryValidationFailedError(err.Error())
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return New(file.Agents)
}

// Lookup returns the capability for an agent and whether it is registered.
func (r *Registry) Lookup(id agents.ID) (Capability, bool) {
	c, ok := r.byAgent[id]
	return c, ok
}

// Reliability returns the agent's reliability score, 0 when unregistered.
func (r *Registry) Reliability(id agents.ID) float64 {
	return r.byAgent[id].Reliability
}

// RequiresScopedGeography reports the agent's geography restriction flag.
// Unregistered agents are treated as unrestricted.
func (r *Registry) RequiresScopedGeography(id agents.ID) bool {
	return r.byAgent[id].RequiresScopedGeography
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.byAgent)
}

// defaultCapabilities is the compiled-in capability table, overridable by a
// registry file.
var defaultCapabilities = []Capability{
	{Agent: agents.LinkedIn, Reliability: 0.90},
	{Agent: agents.Indeed, Reliability: 0.92},
	{Agent: agents.Glassdoor, Reliability: 0.80},
	{Agent: agents.Google, Reliability: 0.85},
	{Agent: agents.ZipRecruiter, Reliability: 0.75, Regions: []string{"usa", "canada"}, RequiresScopedGeography: true},
	{Agent: agents.Seek, Reliability: 0.93, Regions: []string{"australia"}, RequiresScopedGeography: true},
	{Agent: agents.Naukri, Reliability: 0.88, Regions: []string{"india"}, RequiresScopedGeography: true},
	{Agent: agents.Bayt, Reliability: 0.82, Regions: []string{"middle_east"}, RequiresScopedGeography: true},
	{Agent: agents.BDJobs, Reliability: 0.78, Regions: []string{"bangladesh"}, RequiresScopedGeography: true},
}
