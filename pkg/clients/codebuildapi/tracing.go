package codebuildapi

import (
	"context"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "codebuildapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ListBuildIDs(ctx context.Context, projectName string) (ids []string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ListBuildIDs"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("project", projectName)

	return c.Client.ListBuildIDs(ctx, projectName)
}

func (c *tracingClient) GetBuilds(ctx context.Context, ids []string) (builds []Build, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuilds"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("builds", len(ids))

	return c.Client.GetBuilds(ctx, ids)
}

func (c *tracingClient) StartBuild(ctx context.Context, projectName string) (buildID string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "StartBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("project", projectName)

	return c.Client.StartBuild(ctx, projectName)
}
