package trigger

import (
	"context"
	"time"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram, outcomeCount metrics.Counter) Service {
	return &metricsService{s, requestCount, requestLatency, outcomeCount}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	outcomeCount   metrics.Counter
}

func (s *metricsService) GetActivity(ctx context.Context, project string) (activity Activity, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "GetActivity", begin) }(time.Now())

	return s.Service.GetActivity(ctx, project)
}

func (s *metricsService) StartBuild(ctx context.Context, project string) (buildID string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "StartBuild", begin) }(time.Now())

	return s.Service.StartBuild(ctx, project)
}

func (s *metricsService) TriggerProject(ctx context.Context, project string) Outcome {
	// per-project remote calls are measured by the codebuildapi client metrics
	return s.Service.TriggerProject(ctx, project)
}

func (s *metricsService) TriggerProjects(ctx context.Context, projects []string) (batch Batch) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "TriggerProjects", begin)
		for _, o := range batch {
			s.outcomeCount.With("status", foundation.ToLowerSnakeCase(string(o.Status))).Add(1)
		}
	}(time.Now())

	return s.Service.TriggerProjects(ctx, projects)
}
