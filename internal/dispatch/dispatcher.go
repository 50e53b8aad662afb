// internal/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"jobsearch-router/internal/agents"
	stderrors "jobsearch-router/internal/common/errors"
	"jobsearch-router/internal/common/logger"
	"jobsearch-router/internal/common/metrics"
	"jobsearch-router/internal/models"
	"jobsearch-router/pkg/registry"
)

// DefaultWorkerCeiling bounds concurrent agent calls within one dispatch
// when the caller does not supply a cap.
const DefaultWorkerCeiling = 5

// DefaultCallTimeout is the per-agent timeout when none is configured.
const DefaultCallTimeout = 60 * time.Second

// ProviderClient is the capability the dispatcher consumes. Implementations
// live in the scraping layer; the dispatcher is agnostic to whether an agent
// is fetched over HTTP, browser automation or a vendor API.
type ProviderClient interface {
	Fetch(ctx context.Context, agent agents.ID, req models.SearchRequest) ([]models.JobRecord, error)
}

// Dispatcher runs a batch of agent calls concurrently and collects one
// outcome per agent. Individual failures never propagate as errors; they are
// captured in the outcome list.
type Dispatcher struct {
	client   ProviderClient
	registry *registry.Registry
	logger   logger.Logger
}

// New builds a dispatcher over a provider client. The registry supplies
// per-agent timeout overrides; a nil registry means the batch timeout
// applies uniformly.
func New(client ProviderClient, reg *registry.Registry, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		client:   client,
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Dispatch calls every agent in ids concurrently, bounded by maxConcurrency,
// each under perCallTimeout. It blocks until every call has finished, failed
// or timed out; there is no partial or streaming return. The outcome list
// has exactly one entry per input agent, in completion-independent input
// order. Sibling calls are not cancelled when one times out.
func (d *Dispatcher) Dispatch(ctx context.Context, ids []agents.ID, req models.SearchRequest, perCallTimeout time.Duration, maxConcurrency int) []models.AgentOutcome {
	if len(ids) == 0 {
		return nil
	}
	if perCallTimeout <= 0 {
		perCallTimeout = DefaultCallTimeout
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultWorkerCeiling
	}
	if maxConcurrency > len(ids) {
		maxConcurrency = len(ids)
	}

	outcomes := make([]models.AgentOutcome, len(ids))
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(slot int, agent agents.ID) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes[slot] = d.callOne(ctx, agent, req, d.timeoutFor(agent, perCallTimeout))
		}(i, id)
	}

	wg.Wait()
	return outcomes
}

// timeoutFor resolves the effective timeout for one agent: the registry
// override when declared, otherwise the batch default.
func (d *Dispatcher) timeoutFor(agent agents.ID, batchTimeout time.Duration) time.Duration {
	if d.registry != nil {
		if cap, ok := d.registry.Lookup(agent); ok && cap.CallTimeout() > 0 {
			return cap.CallTimeout()
		}
	}
	return batchTimeout
}

// callOne executes a single agent call under its own timeout and converts
// the result into an outcome.
func (d *Dispatcher) callOne(ctx context.Context, agent agents.ID, req models.SearchRequest, timeout time.Duration) models.AgentOutcome {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	records, err := d.client.Fetch(callCtx, agent, req)
	elapsed := time.Since(start)

	metrics.AgentCallDuration.WithLabelValues(agent.String()).Observe(elapsed.Seconds())

	if err != nil {
		return d.failedOutcome(agent, req, err, callCtx, elapsed, timeout)
	}

	// Stamp every record with its source so the aggregator can report and
	// dedupe across agents. Stamping happens on clones: the client owns the
	// returned maps and may hand the same ones to concurrent searches.
	tagged := make([]models.JobRecord, len(records))
	for i, rec := range records {
		clone := maps.Clone(rec)
		if clone == nil {
			clone = make(models.JobRecord, 1)
		}
		clone[models.SourceAgentKey] = agent.String()
		tagged[i] = clone
	}

	metrics.AgentCallsCompleted.WithLabelValues(agent.String()).Inc()
	d.logger.Info("agent call succeeded", map[string]interface{}{
		"agent":      agent.String(),
		"jobCount":   len(tagged),
		"durationMs": elapsed.Milliseconds(),
	})

	return models.AgentOutcome{
		Agent:    agent,
		Success:  true,
		JobCount: len(tagged),
		Duration: elapsed,
		Records:  tagged,
	}
}

// failedOutcome classifies an agent error into a failed outcome. Timeouts
// and capability mismatches get their own codes; everything else is a
// transient call failure. Capability mismatches log at warn, not error: the
// agent behaved as declared.
func (d *Dispatcher) failedOutcome(agent agents.ID, req models.SearchRequest, err error, callCtx context.Context, elapsed, timeout time.Duration) models.AgentOutcome {
	var classified *stderrors.StandardError

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
		classified = stderrors.NewAgentTimeoutError(agent.String(), timeout)
	case stderrors.CodeOf(err) == stderrors.ErrCodeGeographyNotSupported:
		classified = stderrors.NewGeographyNotSupportedError(agent.String(), req.Location)
	default:
		classified = stderrors.NewAgentCallFailedError(agent.String(), err)
	}

	metrics.AgentCallsFailed.WithLabelValues(agent.String(), string(classified.Code)).Inc()

	fields := map[string]interface{}{
		"agent":      agent.String(),
		"errorCode":  string(classified.Code),
		"durationMs": elapsed.Milliseconds(),
		"error":      err.Error(),
	}
	if classified.Retryable {
		d.logger.Error("agent call failed", fields)
	} else {
		d.logger.Warn("agent call rejected", fields)
	}

	return models.AgentOutcome{
		Agent:       agent,
		Success:     false,
		Duration:    elapsed,
		ErrorCode:   string(classified.Code),
		ErrorDetail: classified.Details,
	}
}
