// internal/engine/engine.go
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobsearch-router/internal/aggregate"
	"jobsearch-router/internal/agents"
	"jobsearch-router/internal/classifier"
	"jobsearch-router/internal/common/config"
	stderrors "jobsearch-router/internal/common/errors"
	"jobsearch-router/internal/common/logger"
	"jobsearch-router/internal/common/metrics"
	"jobsearch-router/internal/common/observability"
	"jobsearch-router/internal/dispatch"
	"jobsearch-router/internal/models"
	"jobsearch-router/internal/policy"
	"jobsearch-router/pkg/registry"
)

// Engine wires classifier, policy, dispatcher and aggregator into the full
// search flow. One Engine serves any number of concurrent searches; all of
// its state is read-only after construction.
type Engine struct {
	classifier *classifier.Classifier
	policy     *policy.Policy
	dispatcher *dispatch.Dispatcher
	registry   *registry.Registry
	routing    config.RoutingConfig
	obs        *observability.Observability
	logger     logger.Logger
}

// New assembles an engine. obs may be nil when no meter provider is set up
// (tests, tools).
func New(cfg *config.Config, reg *registry.Registry, client dispatch.ProviderClient, log logger.Logger, obs *observability.Observability) *Engine {
	return &Engine{
		classifier: classifier.NewDefault(),
		policy:     policy.New(reg, cfg.Routing.MaxFanout),
		dispatcher: dispatch.New(client, reg, log),
		registry:   reg,
		routing:    cfg.Routing,
		obs:        obs,
		logger:     log.WithFields(map[string]interface{}{"component": "engine"}),
	}
}

// Search runs one query end to end: classify, decide, dispatch the primary
// set, fall back once if it yields zero successes, then aggregate. The
// caller always receives an AggregatedResult for a valid request; "no jobs
// found" is reported in-band, never as an error.
func (e *Engine) Search(ctx context.Context, req models.SearchRequest) (models.AggregatedResult, error) {
	if req.Query == "" {
		return models.AggregatedResult{}, stderrors.NewEmptyQueryError()
	}
	if req.ResultsWanted <= 0 {
		req.ResultsWanted = e.routing.DefaultResults
	}

	searchID := uuid.NewString()
	log := e.logger.WithFields(map[string]interface{}{"searchId": searchID})

	metrics.SearchesActive.Inc()
	defer metrics.SearchesActive.Dec()
	start := time.Now()

	decision, err := e.route(req, log)
	if err != nil {
		return models.AggregatedResult{}, err
	}

	outcomes := e.dispatcher.Dispatch(ctx, decision.Agents, req,
		e.routing.CallTimeoutDuration(), e.routing.WorkerCeiling)

	// One fallback round, at most, when the whole primary batch failed.
	if countSuccesses(outcomes) == 0 && len(decision.Fallback) > 0 {
		metrics.SearchFallbacks.Inc()
		log.Warn("primary dispatch yielded zero successes, dispatching fallback agents", map[string]interface{}{
			"primaryAgents":  agents.Strings(decision.Agents),
			"fallbackAgents": agents.Strings(decision.Fallback),
		})
		fallbackOutcomes := e.dispatcher.Dispatch(ctx, decision.Fallback, req,
			e.routing.CallTimeoutDuration(), e.routing.WorkerCeiling)
		outcomes = append(outcomes, fallbackOutcomes...)
	}

	elapsed := time.Since(start)
	result := aggregate.Aggregate(outcomes, req, decision, elapsed)
	result.SearchID = searchID

	metrics.SearchDuration.Observe(elapsed.Seconds())
	status := "ok"
	if result.TotalJobs == 0 {
		status = "empty"
	}
	if e.obs != nil {
		e.obs.RecordSearchProcessed(ctx, status)
		e.obs.RecordSearchDuration(ctx, elapsed, status)
	}

	log.Info("search completed", map[string]interface{}{
		"totalJobs":        result.TotalJobs,
		"successfulAgents": agents.Strings(result.SuccessfulAgents),
		"failedAgents":     agents.Strings(result.FailedAgents),
		"durationMs":       elapsed.Milliseconds(),
		"confidence":       decision.Confidence,
	})

	return result, nil
}

// route produces the routing decision: either the explicit single-agent
// override or the classifier + policy path.
func (e *Engine) route(req models.SearchRequest, log logger.Logger) (models.RoutingDecision, error) {
	if req.Agent != "" {
		if _, ok := e.registry.Lookup(req.Agent); !ok {
			return models.RoutingDecision{}, stderrors.NewUnknownAgentError(req.Agent.String())
		}
		log.Info("explicit agent override, bypassing routing", map[string]interface{}{
			"agent": req.Agent.String(),
		})
		return models.RoutingDecision{
			Agents:     []agents.ID{req.Agent},
			Confidence: 1.0,
			Rationale:  "explicit agent override",
		}, nil
	}

	cls := e.classifier.Classify(req.Query)
	decision := e.policy.Decide(cls)

	log.Info("routing decided", map[string]interface{}{
		"agents":     agents.Strings(decision.Agents),
		"fallback":   agents.Strings(decision.Fallback),
		"confidence": decision.Confidence,
		"language":   cls.Language,
		"rationale":  decision.Rationale,
	})
	return decision, nil
}

func countSuccesses(outcomes []models.AgentOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Success {
			n++
		}
	}
	return n
}
