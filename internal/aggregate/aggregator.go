// internal/aggregate/aggregator.go
package aggregate

import (
	"sort"
	"strings"
	"time"

	"jobsearch-router/internal/agents"
	"jobsearch-router/internal/models"
)

// DefaultResultCap truncates the final job list when the request does not
// set its own cap.
const DefaultResultCap = 50

// Weights of the relevance score components.
const (
	titleWeight       = 2
	descriptionWeight = 1
)

// Aggregate merges the outcomes of one query's dispatch rounds into the
// final result: partitioned agent lists, deduplicated and ranked records,
// truncated to the result cap. Pure with respect to its inputs; cannot fail.
// Zero jobs with a populated failed-agent list is a valid terminal state.
func Aggregate(outcomes []models.AgentOutcome, req models.SearchRequest, decision models.RoutingDecision, totalElapsed time.Duration) models.AggregatedResult {
	var (
		succeeded []agents.ID
		failed    []agents.ID
		merged    []models.JobRecord
	)

	for _, outcome := range outcomes {
		if !outcome.Success {
			failed = append(failed, outcome.Agent)
			continue
		}
		succeeded = append(succeeded, outcome.Agent)
		merged = append(merged, outcome.Records...)
	}

	deduped := dedupe(merged)
	ranked := rank(deduped, req.Query)

	cap := req.ResultsWanted
	if cap <= 0 {
		cap = DefaultResultCap
	}
	if len(ranked) > cap {
		ranked = ranked[:cap]
	}

	return models.AggregatedResult{
		TotalJobs:          len(ranked),
		SuccessfulAgents:   succeeded,
		FailedAgents:       failed,
		TotalExecutionTime: totalElapsed,
		Decision:           decision,
		Jobs:               ranked,
	}
}

// dedupe drops records whose lowercased (title, company) pair was already
// seen. First occurrence wins, regardless of source agent.
func dedupe(records []models.JobRecord) []models.JobRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]models.JobRecord, 0, len(records))
	for _, rec := range records {
		key := rec.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// rank orders records by query-word overlap: title hits count double
// description hits. The sort is stable so equally scored records keep their
// merged order.
func rank(records []models.JobRecord, query string) []models.JobRecord {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return records
	}

	scores := make([]int, len(records))
	for i, rec := range records {
		title := strings.ToLower(rec.Title())
		description := strings.ToLower(rec.Description())
		for _, w := range words {
			if strings.Contains(title, w) {
				scores[i] += titleWeight
			}
			if strings.Contains(description, w) {
				scores[i] += descriptionWeight
			}
		}
	}

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make([]models.JobRecord, len(records))
	for i, j := range idx {
		out[i] = records[j]
	}
	return out
}
