package trigger

import (
	"context"

	"github.com/estafette/estafette-agent-trigger/pkg/clients/codebuildapi"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Service decides per CodeBuild project whether to start an agent build
//
//go:generate mockgen -package=trigger -destination ./mock.go -source=service.go
type Service interface {
	GetActivity(ctx context.Context, project string) (activity Activity, err error)
	StartBuild(ctx context.Context, project string) (buildID string, err error)
	TriggerProject(ctx context.Context, project string) (outcome Outcome)
	TriggerProjects(ctx context.Context, projects []string) (batch Batch)
}

// NewService returns a new trigger.Service; a concurrency of 1 processes projects strictly one after another
func NewService(codebuildapiClient codebuildapi.Client, triggerConcurrency int64) Service {
	if triggerConcurrency < 1 {
		triggerConcurrency = 1
	}

	return &service{
		codebuildapiClient: codebuildapiClient,
		triggerConcurrency: triggerConcurrency,
	}
}

type service struct {
	codebuildapiClient codebuildapi.Client
	triggerConcurrency int64
}

func (s *service) GetActivity(ctx context.Context, project string) (activity Activity, err error) {

	ids, err := s.codebuildapiClient.ListBuildIDs(ctx, project)
	if err != nil {
		return activity, err
	}

	if len(ids) == 0 {
		return ActivityIdle, nil
	}

	if len(ids) > RecentBuildsLimit {
		ids = ids[:RecentBuildsLimit]
	}

	builds, err := s.codebuildapiClient.GetBuilds(ctx, ids)
	if err != nil {
		return activity, err
	}

	for _, b := range builds {
		if b.IsInProgress() {
			return ActivityActive, nil
		}
	}

	return ActivityIdle, nil
}

func (s *service) StartBuild(ctx context.Context, project string) (buildID string, err error) {
	return s.codebuildapiClient.StartBuild(ctx, project)
}

// TriggerProject checks the project and starts a build if it's idle; errors end up in the outcome, never in a panic or return value
func (s *service) TriggerProject(ctx context.Context, project string) (outcome Outcome) {

	// calls from TriggerProjects bypass the decorators, so the per-project span lives here
	span, ctx := opentracing.StartSpanFromContext(ctx, "trigger:TriggerProjectItem")
	span.SetTag("project", project)
	defer func() {
		span.SetTag("status", string(outcome.Status))
		span.Finish()
	}()

	activity, err := s.GetActivity(ctx, project)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msgf("Error checking builds for project %v", project)
		return Failed(project, err)
	}

	if activity == ActivityActive {
		log.Ctx(ctx).Info().Msgf("Project %v already has an active build, skipping", project)
		return Skipped(project, ReasonAlreadyRunning)
	}

	// there's no lock between the check above and the start below, so overlapping invocations can both start a build
	buildID, err := s.StartBuild(ctx, project)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msgf("Error starting build for project %v", project)
		return Failed(project, err)
	}

	log.Ctx(ctx).Info().Msgf("Started build %v for project %v", buildID, project)

	return Started(project, buildID)
}

func (s *service) TriggerProjects(ctx context.Context, projects []string) Batch {

	batch := make(Batch, len(projects))

	if s.triggerConcurrency == 1 {
		for i, p := range projects {
			batch[i] = s.TriggerProject(ctx, p)
		}
		return batch
	}

	// limit concurrency using a semaphore; every goroutine writes to its own index to keep input order
	semaphore := semaphore.NewWeighted(s.triggerConcurrency)
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range projects {
		i := i
		p := p

		g.Go(func() error {
			if err := semaphore.Acquire(gctx, 1); err != nil {
				batch[i] = Failed(p, err)
				return nil
			}
			defer semaphore.Release(1)

			batch[i] = s.TriggerProject(gctx, p)
			return nil
		})
	}

	_ = g.Wait()

	return batch
}
