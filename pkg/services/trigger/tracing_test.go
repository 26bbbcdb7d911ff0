package trigger

import (
	"context"
	"testing"

	"github.com/estafette/estafette-agent-trigger/pkg/clients/codebuildapi"
	"github.com/go-kit/kit/metrics/generic"
	gomock "github.com/golang/mock/gomock"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
)

func TestTriggerProjectsTracing(t *testing.T) {

	t.Run("FinishesSpanPerProjectWhenCalledThroughDecorators", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracer := mocktracer.New()
		opentracing.SetGlobalTracer(tracer)
		defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

		codebuildapiClient := codebuildapi.NewMockClient(ctrl)
		codebuildapiClient.EXPECT().ListBuildIDs(gomock.Any(), "alpha").Return([]string{}, nil).Times(1)
		codebuildapiClient.EXPECT().StartBuild(gomock.Any(), "alpha").Return("alpha:1", nil).Times(1)
		codebuildapiClient.EXPECT().ListBuildIDs(gomock.Any(), "beta").Return([]string{"beta:7"}, nil).Times(1)
		codebuildapiClient.EXPECT().GetBuilds(gomock.Any(), []string{"beta:7"}).Return([]codebuildapi.Build{{ID: "beta:7", Status: codebuildapi.BuildStatusInProgress}}, nil).Times(1)

		var service Service
		{
			service = NewService(codebuildapiClient, 1)
			service = NewTracingService(service)
			service = NewLoggingService(service)
			service = NewMetricsService(service, generic.NewCounter("request_count"), generic.NewHistogram("request_latency_seconds", 10), generic.NewCounter("outcome_count"))
		}

		// act
		batch := service.TriggerProjects(context.Background(), []string{"alpha", "beta"})

		assert.Equal(t, Batch{Started("alpha", "alpha:1"), Skipped("beta", ReasonAlreadyRunning)}, batch)

		itemSpans := []*mocktracer.MockSpan{}
		for _, span := range tracer.FinishedSpans() {
			if span.OperationName == "trigger:TriggerProjectItem" {
				itemSpans = append(itemSpans, span)
			}
		}
		if assert.Equal(t, 2, len(itemSpans)) {
			assert.Equal(t, "alpha", itemSpans[0].Tag("project"))
			assert.Equal(t, "STARTED", itemSpans[0].Tag("status"))
			assert.Equal(t, "beta", itemSpans[1].Tag("project"))
			assert.Equal(t, "SKIPPED", itemSpans[1].Tag("status"))
		}
	})

	t.Run("DecoratedTriggerProjectDelegatesToService", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inner := NewMockService(ctrl)
		inner.EXPECT().TriggerProject(gomock.Any(), "alpha").Return(Skipped("alpha", ReasonAlreadyRunning)).Times(1)

		service := NewMetricsService(NewTracingService(inner), generic.NewCounter("request_count"), generic.NewHistogram("request_latency_seconds", 10), generic.NewCounter("outcome_count"))

		// act
		outcome := service.TriggerProject(context.Background(), "alpha")

		assert.Equal(t, Skipped("alpha", ReasonAlreadyRunning), outcome)
	})
}
