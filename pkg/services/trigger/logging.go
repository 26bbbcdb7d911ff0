package trigger

import (
	"context"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/rs/zerolog/log"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "trigger"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) GetActivity(ctx context.Context, project string) (activity Activity, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "GetActivity", err) }()

	return s.Service.GetActivity(ctx, project)
}

func (s *loggingService) StartBuild(ctx context.Context, project string) (buildID string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "StartBuild", err) }()

	return s.Service.StartBuild(ctx, project)
}

func (s *loggingService) TriggerProject(ctx context.Context, project string) Outcome {
	return s.Service.TriggerProject(ctx, project)
}

func (s *loggingService) TriggerProjects(ctx context.Context, projects []string) (batch Batch) {
	defer func() {
		log.Ctx(ctx).Info().
			Int("started", batch.Count(StatusStarted)).
			Int("skipped", batch.Count(StatusSkipped)).
			Int("errors", batch.Count(StatusError)).
			Msgf("Processed %v projects", len(batch))
	}()

	return s.Service.TriggerProjects(ctx, projects)
}
