package codebuildapi

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/aws/aws-sdk-go-v2/service/codebuild/types"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestListBuildIDs(t *testing.T) {

	t.Run("RequestsBuildsForProjectInDescendingOrder", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			ListBuildsForProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params *codebuild.ListBuildsForProjectInput, optFns ...func(*codebuild.Options)) (*codebuild.ListBuildsForProjectOutput, error) {
				assert.Equal(t, "alpha", aws.ToString(params.ProjectName))
				assert.Equal(t, types.SortOrderTypeDescending, params.SortOrder)
				return &codebuild.ListBuildsForProjectOutput{Ids: []string{"alpha:3", "alpha:2", "alpha:1"}}, nil
			}).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		ids, err := client.ListBuildIDs(context.Background(), "alpha")

		assert.Nil(t, err)
		assert.Equal(t, []string{"alpha:3", "alpha:2", "alpha:1"}, ids)
	})

	t.Run("ReturnsServiceErrorUnwrapped", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			ListBuildsForProject(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset by peer")).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		_, err := client.ListBuildIDs(context.Background(), "alpha")

		assert.NotNil(t, err)
		assert.Equal(t, "connection reset by peer", err.Error())
	})
}

func TestGetBuilds(t *testing.T) {

	t.Run("DoesNotCallServiceForEmptyIDs", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.EXPECT().BatchGetBuilds(gomock.Any(), gomock.Any()).Times(0)

		client := &client{codebuild: codebuildAPI}

		// act
		builds, err := client.GetBuilds(context.Background(), []string{})

		assert.Nil(t, err)
		assert.Equal(t, 0, len(builds))
	})

	t.Run("MapsBuildStatusAndID", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			BatchGetBuilds(gomock.Any(), gomock.Any()).
			Return(&codebuild.BatchGetBuildsOutput{
				Builds: []types.Build{
					{Id: aws.String("alpha:2"), ProjectName: aws.String("alpha"), BuildStatus: types.StatusTypeInProgress},
					{Id: aws.String("alpha:1"), ProjectName: aws.String("alpha"), BuildStatus: types.StatusTypeSucceeded},
				},
			}, nil).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		builds, err := client.GetBuilds(context.Background(), []string{"alpha:2", "alpha:1"})

		assert.Nil(t, err)
		if assert.Equal(t, 2, len(builds)) {
			assert.Equal(t, "alpha:2", builds[0].ID)
			assert.Equal(t, BuildStatusInProgress, builds[0].Status)
			assert.True(t, builds[0].IsInProgress())
			assert.Equal(t, "alpha:1", builds[1].ID)
			assert.Equal(t, BuildStatusSucceeded, builds[1].Status)
			assert.False(t, builds[1].IsInProgress())
		}
	})
}

func TestStartBuild(t *testing.T) {

	t.Run("ReturnsIDOfStartedBuild", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			StartBuild(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params *codebuild.StartBuildInput, optFns ...func(*codebuild.Options)) (*codebuild.StartBuildOutput, error) {
				assert.Equal(t, "alpha", aws.ToString(params.ProjectName))
				return &codebuild.StartBuildOutput{Build: &types.Build{Id: aws.String("alpha:4")}}, nil
			}).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		buildID, err := client.StartBuild(context.Background(), "alpha")

		assert.Nil(t, err)
		assert.Equal(t, "alpha:4", buildID)
	})

	t.Run("ReturnsServiceErrorUnwrapped", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		serviceErr := errors.New("AccountLimitExceededException: Cannot have more than 1 builds in queue for the account")
		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			StartBuild(gomock.Any(), gomock.Any()).
			Return(nil, serviceErr).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		_, err := client.StartBuild(context.Background(), "alpha")

		assert.Equal(t, serviceErr, err)
	})

	t.Run("ReturnsErrMissingBuildIDIfResponseHasNoBuild", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		codebuildAPI := NewMockcodebuildAPI(ctrl)
		codebuildAPI.
			EXPECT().
			StartBuild(gomock.Any(), gomock.Any()).
			Return(&codebuild.StartBuildOutput{}, nil).
			Times(1)

		client := &client{codebuild: codebuildAPI}

		// act
		_, err := client.StartBuild(context.Background(), "alpha")

		assert.True(t, errors.Is(err, ErrMissingBuildID))
	})
}
