// internal/models/job.go
package models

import "strings"

// SourceAgentKey is the record field the dispatcher stamps each job with.
const SourceAgentKey = "source_agent"

// JobRecord is one job listing as returned by a provider. The payload is
// opaque to the router: only the fields needed for deduplication and ranking
// are read, everything else passes through untouched.
type JobRecord map[string]interface{}

func (r JobRecord) stringField(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Title returns the record's title field, or "" when absent.
func (r JobRecord) Title() string {
	return r.stringField("title")
}

// Company returns the record's company field, or "" when absent.
func (r JobRecord) Company() string {
	return r.stringField("company")
}

// Description returns the record's description field, or "" when absent.
func (r JobRecord) Description() string {
	return r.stringField("description")
}

// SourceAgent returns the agent the record was fetched from.
func (r JobRecord) SourceAgent() string {
	return r.stringField(SourceAgentKey)
}

// DedupeKey is the composite identity used by the aggregator: lowercased
// (title, company). First occurrence wins regardless of source agent.
func (r JobRecord) DedupeKey() string {
	return strings.ToLower(r.Title()) + "\x00" + strings.ToLower(r.Company())
}
