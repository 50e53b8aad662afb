// test/e2e/e2e_test.go
// End-to-end exercises of the full search flow: default config, compiled-in
// registry, real classifier and policy, with only the provider boundary
// scripted.
package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-router/internal/agents"
	"jobsearch-router/internal/common/config"
	"jobsearch-router/internal/common/logger"
	"jobsearch-router/internal/common/observability"
	"jobsearch-router/internal/engine"
	"jobsearch-router/internal/models"
	"jobsearch-router/pkg/registry"
)

// provider simulates the scraping layer: each agent serves a fixed page of
// listings, optionally failing instead.
type provider struct {
	mu       sync.Mutex
	listings map[agents.ID][]models.JobRecord
	outages  map[agents.ID]error
	calls    map[agents.ID]int
}

func newProvider() *provider {
	return &provider{
		listings: make(map[agents.ID][]models.JobRecord),
		outages:  make(map[agents.ID]error),
		calls:    make(map[agents.ID]int),
	}
}

func (p *provider) Fetch(_ context.Context, agent agents.ID, _ models.SearchRequest) ([]models.JobRecord, error) {
	p.mu.Lock()
	p.calls[agent]++
	p.mu.Unlock()

	if err, ok := p.outages[agent]; ok {
		return nil, err
	}
	return p.listings[agent], nil
}

func (p *provider) serve(agent agents.ID, jobs ...models.JobRecord) {
	p.listings[agent] = jobs
}

func listing(title, company, description string) models.JobRecord {
	return models.JobRecord{
		"title":       title,
		"company":     company,
		"description": description,
		"job_url":     fmt.Sprintf("https://jobs.example/%s-%s", title, company),
	}
}

func newEngine(t *testing.T, p *provider) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Routing.CallTimeout = 1000
	return engine.New(cfg, registry.Default(), p, logger.Nop(), nil)
}

func TestE2E_AustralianTechQuery(t *testing.T) {
	p := newProvider()
	p.serve(agents.Seek,
		listing("Senior Software Engineer", "Atlassian", "golang microservices"),
		listing("Software Engineer", "Canva", "backend platform"),
	)
	p.serve(agents.Indeed,
		listing("Software Engineer", "Canva", "backend platform"), // duplicate of the seek copy
		listing("DevOps Engineer", "Telstra", "kubernetes"),
	)

	eng := newEngine(t, p)
	result, err := eng.Search(context.Background(), models.SearchRequest{Query: "software engineer sydney"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalJobs, "cross-agent duplicate collapses")
	assert.Equal(t, agents.Seek, result.Decision.Agents[0])
	assert.Contains(t, result.Decision.Rationale, "australia")
	assert.Contains(t, result.Decision.Rationale, "technology")

	// Both exact-title matches outrank the devops listing.
	assert.Equal(t, "DevOps Engineer", result.Jobs[2].Title())
}

func TestE2E_ArabicQueryRoutesToRegionalAgent(t *testing.T) {
	p := newProvider()
	p.serve(agents.Bayt, listing("محاسب", "شركة الخليج", ""))

	eng := newEngine(t, p)
	result, err := eng.Search(context.Background(), models.SearchRequest{Query: "وظائف محاسب دبي"})

	require.NoError(t, err)
	assert.Contains(t, result.Decision.Agents, agents.Bayt)
	assert.Equal(t, 1, result.TotalJobs)
	assert.Equal(t, "bayt", result.Jobs[0].SourceAgent())
}

func TestE2E_FallbackRecoversFromRegionalOutage(t *testing.T) {
	cfg := config.Default()
	cfg.Routing.CallTimeout = 1000
	cfg.Routing.MaxFanout = 2

	p := newProvider()
	p.outages[agents.Seek] = errors.New("connection refused")
	p.outages[agents.Indeed] = errors.New("connection refused")
	p.serve(agents.LinkedIn, listing("Registered Nurse", "NSW Health", "icu"))

	eng := engine.New(cfg, registry.Default(), p, logger.Nop(), nil)
	result, err := eng.Search(context.Background(), models.SearchRequest{Query: "nurse sydney"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalJobs)
	assert.Contains(t, result.SuccessfulAgents, agents.LinkedIn)
	assert.Equal(t, 1, p.calls[agents.Seek], "no retry of failed primaries")
}

func TestE2E_UnscopedQueryAvoidsRestrictedAgents(t *testing.T) {
	p := newProvider()
	p.serve(agents.Indeed, listing("Machine Learning Engineer", "Acme", ""))

	eng := newEngine(t, p)
	result, err := eng.Search(context.Background(), models.SearchRequest{Query: "machine learning engineer"})

	require.NoError(t, err)
	for _, id := range result.Decision.Agents {
		cap, ok := registry.Default().Lookup(id)
		require.True(t, ok)
		assert.False(t, cap.RequiresScopedGeography, id)
	}
	assert.Zero(t, p.calls[agents.Seek])
	assert.Zero(t, p.calls[agents.BDJobs])
}

func TestE2E_FullStackAssembly(t *testing.T) {
	// The production wiring: shipped registry file, real zap logger, otel
	// metrics. The provider boundary is still scripted.
	reg, err := registry.LoadFile("../../configs/agent-registry.json")
	require.NoError(t, err)

	log := logger.NewZapAdapter(logger.New("error", "json"))
	obs := observability.New("jobsearch-router-e2e")
	defer obs.Shutdown()

	p := newProvider()
	p.serve(agents.Indeed, listing("Engineer", "Acme", ""))

	cfg := config.Default()
	cfg.Routing.CallTimeout = 1000
	eng := engine.New(cfg, reg, p, log, obs)

	result, err := eng.Search(context.Background(), models.SearchRequest{Query: "engineer", Agent: agents.Indeed})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalJobs)
}
