package codebuildapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/aws/aws-sdk-go-v2/service/codebuild/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// ErrMissingBuildID is returned when StartBuild succeeds without returning a build id
	ErrMissingBuildID = errors.New("The started build has no id")
)

// Client is the interface for communicating with the CodeBuild api; service errors are returned unwrapped so their message ends up in outcomes as is
//
//go:generate mockgen -package=codebuildapi -destination ./mock.go -source=client.go
type Client interface {
	ListBuildIDs(ctx context.Context, projectName string) (ids []string, err error)
	GetBuilds(ctx context.Context, ids []string) (builds []Build, err error)
	StartBuild(ctx context.Context, projectName string) (buildID string, err error)
}

// codebuildAPI is the subset of the aws sdk codebuild client used by this package
type codebuildAPI interface {
	ListBuildsForProject(ctx context.Context, params *codebuild.ListBuildsForProjectInput, optFns ...func(*codebuild.Options)) (*codebuild.ListBuildsForProjectOutput, error)
	BatchGetBuilds(ctx context.Context, params *codebuild.BatchGetBuildsInput, optFns ...func(*codebuild.Options)) (*codebuild.BatchGetBuildsOutput, error)
	StartBuild(ctx context.Context, params *codebuild.StartBuildInput, optFns ...func(*codebuild.Options)) (*codebuild.StartBuildOutput, error)
}

// NewClient returns a new codebuildapi.Client
func NewClient(awsConfig aws.Config) Client {
	return &client{
		codebuild: codebuild.NewFromConfig(awsConfig),
	}
}

type client struct {
	codebuild codebuildAPI
}

// ListBuildIDs returns the ids of the builds for a project, most recent first
func (c *client) ListBuildIDs(ctx context.Context, projectName string) (ids []string, err error) {

	response, err := c.codebuild.ListBuildsForProject(ctx, &codebuild.ListBuildsForProjectInput{
		ProjectName: aws.String(projectName),
		SortOrder:   types.SortOrderTypeDescending,
	})
	if err != nil {
		return nil, err
	}

	return response.Ids, nil
}

func (c *client) GetBuilds(ctx context.Context, ids []string) (builds []Build, err error) {

	if len(ids) == 0 {
		return []Build{}, nil
	}

	response, err := c.codebuild.BatchGetBuilds(ctx, &codebuild.BatchGetBuildsInput{
		Ids: ids,
	})
	if err != nil {
		return nil, err
	}

	if len(response.BuildsNotFound) > 0 {
		log.Debug().Strs("buildsNotFound", response.BuildsNotFound).Msg("CodeBuild could not find some of the requested builds")
	}

	builds = make([]Build, 0, len(response.Builds))
	for _, b := range response.Builds {
		builds = append(builds, Build{
			ID:          aws.ToString(b.Id),
			ProjectName: aws.ToString(b.ProjectName),
			Status:      BuildStatus(b.BuildStatus),
			StartTime:   b.StartTime,
		})
	}

	return builds, nil
}

func (c *client) StartBuild(ctx context.Context, projectName string) (buildID string, err error) {

	response, err := c.codebuild.StartBuild(ctx, &codebuild.StartBuildInput{
		ProjectName: aws.String(projectName),
	})
	if err != nil {
		return "", err
	}

	if response.Build == nil || aws.ToString(response.Build.Id) == "" {
		return "", errors.Wrapf(ErrMissingBuildID, "Starting build for project %v", projectName)
	}

	return aws.ToString(response.Build.Id), nil
}
