package codebuildapi

import (
	"context"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "codebuildapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ListBuildIDs(ctx context.Context, projectName string) (ids []string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ListBuildIDs", err) }()

	return c.Client.ListBuildIDs(ctx, projectName)
}

func (c *loggingClient) GetBuilds(ctx context.Context, ids []string) (builds []Build, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuilds", err) }()

	return c.Client.GetBuilds(ctx, ids)
}

func (c *loggingClient) StartBuild(ctx context.Context, projectName string) (buildID string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "StartBuild", err) }()

	return c.Client.StartBuild(ctx, projectName)
}
