// internal/models/search.go
package models

import (
	"time"

	"jobsearch-router/internal/agents"
)

// SearchRequest is the immutable input for one search. Every field except
// Query is optional.
type SearchRequest struct {
	Query          string    `json:"query"`
	Location       string    `json:"location,omitempty"`       // explicit location override
	Agent          agents.ID `json:"agent,omitempty"`          // explicit single-agent override
	ResultsWanted  int       `json:"resultsWanted,omitempty"`  // result cap, default applied by engine
	HoursOld       int       `json:"hoursOld,omitempty"`       // recency window, advisory
}

// RoutingDecision is the output of the selection policy: which agents to
// call, in what order, with what to fall back on. Immutable once built.
type RoutingDecision struct {
	Agents     []agents.ID `json:"agents"`
	Fallback   []agents.ID `json:"fallback"`
	Confidence float64     `json:"confidence"`
	Rationale  string      `json:"rationale"`
}

// AgentOutcome records the result of one dispatched agent call, success or
// failure. Failures never surface as errors from the dispatcher; they are
// carried here.
type AgentOutcome struct {
	Agent       agents.ID     `json:"agent"`
	Success     bool          `json:"success"`
	JobCount    int           `json:"jobCount"`
	Duration    time.Duration `json:"duration"`
	ErrorCode   string        `json:"errorCode,omitempty"`
	ErrorDetail string        `json:"errorDetail,omitempty"`
	Records     []JobRecord   `json:"-"`
}

// AggregatedResult is the final response handed back to the caller. A search
// that found nothing is a valid terminal state, reported in-band.
type AggregatedResult struct {
	SearchID           string          `json:"searchId"`
	TotalJobs          int             `json:"totalJobs"`
	SuccessfulAgents   []agents.ID     `json:"successfulAgents"`
	FailedAgents       []agents.ID     `json:"failedAgents"`
	TotalExecutionTime time.Duration   `json:"totalExecutionTime"`
	Decision           RoutingDecision `json:"routingDecision"`
	Jobs               []JobRecord     `json:"jobs"`
}
