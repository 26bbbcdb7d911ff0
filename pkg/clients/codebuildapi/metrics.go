package codebuildapi

import (
	"context"
	"time"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) ListBuildIDs(ctx context.Context, projectName string) (ids []string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "ListBuildIDs", begin) }(time.Now())

	return c.Client.ListBuildIDs(ctx, projectName)
}

func (c *metricsClient) GetBuilds(ctx context.Context, ids []string) (builds []Build, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuilds", begin) }(time.Now())

	return c.Client.GetBuilds(ctx, ids)
}

func (c *metricsClient) StartBuild(ctx context.Context, projectName string) (buildID string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "StartBuild", begin) }(time.Now())

	return c.Client.StartBuild(ctx, projectName)
}
