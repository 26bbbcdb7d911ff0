package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/estafette/estafette-agent-trigger/pkg/services/trigger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestConfigureGinGonic(t *testing.T) {
	t.Run("DoesNotPanic", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		triggerHandler := trigger.NewHandler(api.NewConfigReader("", nil), trigger.NewMockService(ctrl))

		// act
		_ = configureGinGonic(triggerHandler)
	})

	t.Run("ServesProjectsFromPinnedConfig", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		triggerHandler := trigger.NewHandler(api.NewConfigReader("", nil), trigger.NewMockService(ctrl))
		triggerHandler.SetConfig(&api.Config{Projects: api.ProjectList{"alpha"}, Environment: "dev", Concurrency: 1})

		router := configureGinGonic(triggerHandler)
		recorder := httptest.NewRecorder()

		// act
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"environment":"dev","projects":["alpha"]}`, recorder.Body.String())
	})

	t.Run("ServesLiveness", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := configureGinGonic(trigger.NewHandler(api.NewConfigReader("", nil), trigger.NewMockService(ctrl)))
		recorder := httptest.NewRecorder()

		// act
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/liveness", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "I'm alive!", recorder.Body.String())
	})
}
