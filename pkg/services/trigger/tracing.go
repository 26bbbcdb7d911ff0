package trigger

import (
	"context"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "trigger"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) GetActivity(ctx context.Context, project string) (activity Activity, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "GetActivity"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.GetActivity(ctx, project)
}

func (s *tracingService) StartBuild(ctx context.Context, project string) (buildID string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "StartBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.StartBuild(ctx, project)
}

func (s *tracingService) TriggerProject(ctx context.Context, project string) Outcome {
	return s.Service.TriggerProject(ctx, project)
}

func (s *tracingService) TriggerProjects(ctx context.Context, projects []string) (batch Batch) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "TriggerProjects"))
	defer func() { api.FinishSpan(span) }()
	span.SetTag("projects", len(projects))

	return s.Service.TriggerProjects(ctx, projects)
}
