// internal/policy/policy.go
package policy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"jobsearch-router/internal/agents"
	"jobsearch-router/internal/catalog"
	"jobsearch-router/internal/models"
	"jobsearch-router/pkg/registry"
)

// DefaultMaxFanout caps how many agents one query fans out to.
const DefaultMaxFanout = 6

// Confidence increments per contributing signal.
const (
	baseConfidence     = 0.5
	regionConfidence   = 0.3
	industryConfidence = 0.2
	localConfidence    = 0.1
)

// Policy turns a classification into a routing decision. Deterministic given
// the static catalogs and registry; it cannot fail — when nothing matches it
// degrades to the default global agent set.
type Policy struct {
	registry  *registry.Registry
	maxFanout int
}

// New builds a policy over the given registry. fanout <= 0 selects the
// default cap.
func New(reg *registry.Registry, fanout int) *Policy {
	if fanout <= 0 {
		fanout = DefaultMaxFanout
	}
	return &Policy{registry: reg, maxFanout: fanout}
}

// Decide produces the ordered primary agent set, the fallback set, a
// confidence score and a rationale assembled from every contributing signal.
func (p *Policy) Decide(cls models.Classification) models.RoutingDecision {
	var (
		working   []agents.ID
		rationale []string
	)
	confidence := baseConfidence
	localPromoted := false

	// 1. Region signal: primary agents first, then secondary.
	if cls.Region != nil {
		working = appendUnique(working, cls.Region.PrimaryAgents...)
		working = appendUnique(working, cls.Region.SecondaryAgents...)
		confidence += regionConfidence
		rationale = append(rationale,
			fmt.Sprintf("region %q matched on token %q", cls.Region.Name, cls.MatchedToken))
	}

	// 2. Industry signal.
	if cls.Industry != nil {
		working = appendUnique(working, cls.Industry.PreferredAgents...)
		confidence += industryConfidence * cls.Industry.Weight
		rationale = append(rationale,
			fmt.Sprintf("industry %q matched", cls.Industry.Name))
	}

	// 3. Local searches favor region-specific agents over global ones.
	if cls.IsLocalSearch() && cls.Region != nil {
		working = promoteToFront(working, cls.Region.PrimaryAgents)
		confidence += localConfidence
		localPromoted = true
		rationale = append(rationale,
			fmt.Sprintf("local search within %.0f km, promoting regional agents", cls.Distance.Km))
	}

	// 4. No geography: start from the full default global set instead.
	if cls.Region == nil {
		working = append([]agents.ID(nil), catalog.DefaultGlobalAgents...)
		rationale = append(rationale, "no geographic match, using default global agents")
	}

	// 5. Geography-restricted agents must not be asked geography-agnostic
	// queries; their backends reject them outright.
	if cls.Region == nil && !cls.IsLocalSearch() {
		working = p.dropScopedGeography(working, &rationale)
	}

	// 6. Never dispatch an empty set.
	if len(working) == 0 {
		working = append([]agents.ID(nil), catalog.DefaultGlobalAgents...)
		rationale = append(rationale, "selection empty after filtering, using default global agents")
	}

	// 7. Reliability order; stable, so insertion order breaks ties.
	sort.SliceStable(working, func(i, j int) bool {
		return p.registry.Reliability(working[i]) > p.registry.Reliability(working[j])
	})

	// 8. Fan-out cap. Agents beyond the cap are not selected and do not
	// become fallback candidates.
	if len(working) > p.maxFanout {
		working = working[:p.maxFanout]
	}

	fallback := p.buildFallback(cls, working)

	if localPromoted {
		// Promotion happened before the reliability sort; put the regional
		// primaries back in front without disturbing relative order behind
		// them.
		working = promoteToFront(working, cls.Region.PrimaryAgents)
	}

	return models.RoutingDecision{
		Agents:     working,
		Fallback:   fallback,
		Confidence: math.Min(confidence, 1.0),
		Rationale:  strings.Join(rationale, "; "),
	}
}

// buildFallback assembles the fallback set: the fixed globally reliable
// unrestricted defaults, plus the matched region's unrestricted secondaries,
// minus anything already selected.
func (p *Policy) buildFallback(cls models.Classification, primary []agents.ID) []agents.ID {
	inPrimary := make(map[agents.ID]struct{}, len(primary))
	for _, id := range primary {
		inPrimary[id] = struct{}{}
	}

	var fallback []agents.ID
	add := func(id agents.ID) {
		if _, taken := inPrimary[id]; taken {
			return
		}
		for _, existing := range fallback {
			if existing == id {
				return
			}
		}
		fallback = append(fallback, id)
	}

	for _, id := range catalog.DefaultFallbackAgents {
		add(id)
	}
	if cls.Region != nil {
		for _, id := range cls.Region.SecondaryAgents {
			if !p.registry.RequiresScopedGeography(id) {
				add(id)
			}
		}
	}
	return fallback
}

// dropScopedGeography removes agents flagged RequiresScopedGeography from
// the working set.
func (p *Policy) dropScopedGeography(working []agents.ID, rationale *[]string) []agents.ID {
	kept := working[:0]
	var dropped []string
	for _, id := range working {
		if p.registry.RequiresScopedGeography(id) {
			dropped = append(dropped, id.String())
			continue
		}
		kept = append(kept, id)
	}
	if len(dropped) > 0 {
		*rationale = append(*rationale,
			fmt.Sprintf("excluded geography-restricted agents for unscoped query: %s", strings.Join(dropped, ", ")))
	}
	return kept
}

// appendUnique appends ids not already present, preserving order.
func appendUnique(dst []agents.ID, ids ...agents.ID) []agents.ID {
	for _, id := range ids {
		present := false
		for _, existing := range dst {
			if existing == id {
				present = true
				break
			}
		}
		if !present {
			dst = append(dst, id)
		}
	}
	return dst
}

// promoteToFront moves the given ids (those present in the set) to the front
// of the set, keeping their given order and the relative order of the rest.
func promoteToFront(set []agents.ID, front []agents.ID) []agents.ID {
	inSet := make(map[agents.ID]struct{}, len(set))
	for _, id := range set {
		inSet[id] = struct{}{}
	}

	promoted := make([]agents.ID, 0, len(set))
	taken := make(map[agents.ID]struct{}, len(front))
	for _, id := range front {
		if _, ok := inSet[id]; ok {
			promoted = append(promoted, id)
			taken[id] = struct{}{}
		}
	}
	for _, id := range set {
		if _, ok := taken[id]; !ok {
			promoted = append(promoted, id)
		}
	}
	return promoted
}
