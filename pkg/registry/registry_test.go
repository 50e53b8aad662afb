// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-router/internal/agents"
	"jobsearch-router/internal/catalog"
	stderrors "jobsearch-router/internal/common/errors"
)

func TestDefault_IsComplete(t *testing.T) {
	reg := Default()
	assert.Equal(t, len(agents.All), reg.Len())
	for _, id := range agents.All {
		cap, ok := reg.Lookup(id)
		require.True(t, ok, id)
		assert.Greater(t, cap.Reliability, 0.0, id)
		assert.LessOrEqual(t, cap.Reliability, 1.0, id)
	}
}

func TestNew_RejectsInvalidCapabilities(t *testing.T) {
	tests := []struct {
		name string
		caps []Capability
	}{
		{
			name: "unknown agent",
			caps: []Capability{{Agent: "monster", Reliability: 0.5}},
		},
		{
			name: "duplicate agent",
			caps: []Capability{
				{Agent: agents.Indeed, Reliability: 0.9},
				{Agent: agents.Indeed, Reliability: 0.8},
			},
		},
		{
			name: "reliability above one",
			caps: []Capability{{Agent: agents.Indeed, Reliability: 1.5}},
		},
		{
			name: "negative reliability",
			caps: []Capability{{Agent: agents.Indeed, Reliability: -0.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.caps)
			assert.Error(t, err)
		})
	}
}

func TestDefault_RegionNamesResolveInCatalog(t *testing.T) {
	reg := Default()
	for _, id := range agents.All {
		cap, ok := reg.Lookup(id)
		require.True(t, ok)
		for _, name := range cap.Regions {
			assert.NotNil(t, catalog.RegionByName(name),
				"agent %q declares unknown region %q", id, name)
		}
	}
}

func TestCapability_ServesRegion(t *testing.T) {
	worldwide := Capability{Agent: agents.Indeed}
	assert.True(t, worldwide.ServesRegion("australia"))
	assert.True(t, worldwide.ServesRegion("bangladesh"))

	scoped := Capability{Agent: agents.Seek, Regions: []string{"australia"}}
	assert.True(t, scoped.ServesRegion("australia"))
	assert.False(t, scoped.ServesRegion("usa"))
}

func TestCapability_CallTimeout(t *testing.T) {
	assert.Zero(t, Capability{}.CallTimeout())
	assert.Equal(t, 90*time.Second, Capability{CallTimeoutMs: 90000}.CallTimeout())
}

func TestLoadFile(t *testing.T) {
	valid := `{
		"version": "1",
		"lastUpdated": "2026-08-01",
		"agents": [
			{"agent": "indeed", "reliability": 0.92},
			{"agent": "seek", "reliability": 0.93, "regions": ["australia"], "requiresScopedGeography": true, "callTimeoutMs": 90000}
		]
	}`

	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	cap, ok := reg.Lookup(agents.Seek)
	require.True(t, ok)
	assert.True(t, cap.RequiresScopedGeography)
	assert.Equal(t, 90*time.Second, cap.CallTimeout())
	assert.Equal(t, 0.92, reg.Reliability(agents.Indeed))
}

func TestLoadFile_SchemaRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "agent outside the closed set",
			body: `{"version": "1", "agents": [{"agent": "monster", "reliability": 0.5}]}`,
		},
		{
			name: "reliability out of range",
			body: `{"version": "1", "agents": [{"agent": "indeed", "reliability": 1.5}]}`,
		},
		{
			name: "missing reliability",
			body: `{"version": "1", "agents": [{"agent": "indeed"}]}`,
		},
		{
			name: "not json",
			body: `agents: []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "registry.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Equal(t, stderrors.ErrCodeRegistryValidationFailed, stderrors.CodeOf(err))
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeRegistryLoadFailed, stderrors.CodeOf(err))
}

func TestShippedRegistryFileMatchesSchema(t *testing.T) {
	reg, err := LoadFile(filepath.Join("..", "..", "configs", "agent-registry.json"))
	require.NoError(t, err)
	assert.Equal(t, len(agents.All), reg.Len())
}
