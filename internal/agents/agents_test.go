// internal/agents/agents_test.go
package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "known agent", input: "linkedin", want: LinkedIn},
		{name: "regional agent", input: "bdjobs", want: BDJobs},
		{name: "unknown agent", input: "monster", wantErr: true},
		{name: "case sensitive", input: "LinkedIn", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAll_CoversEveryValidID(t *testing.T) {
	assert.Len(t, All, 9)
	for _, id := range All {
		assert.True(t, id.Valid(), id)
	}
}

func TestStrings_RoundTrips(t *testing.T) {
	got := Strings([]ID{Seek, Indeed})
	assert.Equal(t, []string{"seek", "indeed"}, got)
}
