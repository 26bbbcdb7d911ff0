package api

import (
	"context"
	"errors"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
)

func TestReadConfig(t *testing.T) {

	t.Run("ReadsProjectsFromJsonEnvironmentVariable", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `["alpha","beta"]`,
			"ENVIRONMENT":        "dev",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, ProjectList{"alpha", "beta"}, config.Projects)
		assert.Equal(t, "dev", config.Environment)
	})

	t.Run("DefaultsConcurrencyToOne", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `["alpha"]`,
			"ENVIRONMENT":        "dev",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, 1, config.Concurrency)
	})

	t.Run("ReturnsErrMissingProjectsIfProjectListIsNotSet", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"ENVIRONMENT": "dev",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, config)
		assert.True(t, errors.Is(err, ErrMissingProjects))
	})

	t.Run("ReturnsErrMissingProjectsIfProjectListIsEmpty", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `[]`,
			"ENVIRONMENT":        "dev",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, config)
		assert.True(t, errors.Is(err, ErrMissingProjects))
	})

	t.Run("ReturnsErrorIfProjectListIsMalformed", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `alpha,beta`,
			"ENVIRONMENT":        "dev",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, config)
		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrMissingEnvironmentIfEnvironmentIsNotSet", func(t *testing.T) {

		configReader := NewConfigReader("", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `["alpha"]`,
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, config)
		assert.True(t, errors.Is(err, ErrMissingEnvironment))
	})

	t.Run("ReadsConfigFromYamlFile", func(t *testing.T) {

		configReader := NewConfigReader("testdata/config.yaml", envconfig.MapLookuper(map[string]string{}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, ProjectList{"tfc-agent-network", "tfc-agent-platform"}, config.Projects)
		assert.Equal(t, "staging", config.Environment)
		assert.Equal(t, 2, config.Concurrency)
		assert.Equal(t, "*/5 * * * *", config.Schedule)
	})

	t.Run("OverridesYamlFileValuesFromEnvironmentVariables", func(t *testing.T) {

		configReader := NewConfigReader("testdata/config.yaml", envconfig.MapLookuper(map[string]string{
			"CODEBUILD_PROJECTS": `["gamma"]`,
			"ENVIRONMENT":        "production",
		}))

		// act
		config, err := configReader.ReadConfig(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, ProjectList{"gamma"}, config.Projects)
		assert.Equal(t, "production", config.Environment)
		assert.Equal(t, 2, config.Concurrency)
	})

	t.Run("ReturnsErrMissingProjectsIfYamlFileHasNoProjects", func(t *testing.T) {

		configReader := NewConfigReader("testdata/config-without-projects.yaml", envconfig.MapLookuper(map[string]string{}))

		// act
		_, err := configReader.ReadConfig(context.Background())

		assert.True(t, errors.Is(err, ErrMissingProjects))
	})

	t.Run("ReturnsErrorIfConfigFileDoesNotExist", func(t *testing.T) {

		configReader := NewConfigReader("testdata/does-not-exist.yaml", envconfig.MapLookuper(map[string]string{}))

		// act
		_, err := configReader.ReadConfig(context.Background())

		assert.NotNil(t, err)
	})
}

func TestConfigValidate(t *testing.T) {

	t.Run("ReturnsNilForValidConfig", func(t *testing.T) {

		config := Config{Projects: ProjectList{"alpha"}, Environment: "dev", Concurrency: 1}

		// act
		err := config.Validate()

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrInvalidProjectsIfAProjectNameIsBlank", func(t *testing.T) {

		config := Config{Projects: ProjectList{"alpha", " "}, Environment: "dev", Concurrency: 1}

		// act
		err := config.Validate()

		assert.True(t, errors.Is(err, ErrInvalidProjects))
	})

	t.Run("ReturnsErrInvalidConcurrencyIfConcurrencyIsBelowOne", func(t *testing.T) {

		config := Config{Projects: ProjectList{"alpha"}, Environment: "dev", Concurrency: -1}

		// act
		err := config.Validate()

		assert.True(t, errors.Is(err, ErrInvalidConcurrency))
	})

	t.Run("ReturnsErrInvalidScheduleIfScheduleIsNotACronExpression", func(t *testing.T) {

		config := Config{Projects: ProjectList{"alpha"}, Environment: "dev", Concurrency: 1, Schedule: "every five minutes"}

		// act
		err := config.Validate()

		assert.True(t, errors.Is(err, ErrInvalidSchedule))
	})

	t.Run("AllowsDuplicateProjects", func(t *testing.T) {

		config := Config{Projects: ProjectList{"alpha", "alpha"}, Environment: "dev", Concurrency: 1}

		// act
		err := config.Validate()

		assert.Nil(t, err)
	})
}

func TestProjectListEnvDecode(t *testing.T) {

	t.Run("KeepsOrderOfJsonArray", func(t *testing.T) {

		var projects ProjectList

		// act
		err := projects.EnvDecode(`["gamma","alpha","beta"]`)

		assert.Nil(t, err)
		assert.Equal(t, ProjectList{"gamma", "alpha", "beta"}, projects)
	})

	t.Run("ReturnsErrInvalidProjectsForNonArrayValue", func(t *testing.T) {

		var projects ProjectList

		// act
		err := projects.EnvDecode(`{"name":"alpha"}`)

		assert.True(t, errors.Is(err, ErrInvalidProjects))
	})

	t.Run("KeepsCurrentListForEmptyValue", func(t *testing.T) {

		projects := ProjectList{"alpha"}

		// act
		err := projects.EnvDecode("")

		assert.Nil(t, err)
		assert.Equal(t, ProjectList{"alpha"}, projects)
	})

	t.Run("LeavesListEmptyForEmptyValue", func(t *testing.T) {

		var projects ProjectList

		// act
		err := projects.EnvDecode("")

		assert.Nil(t, err)
		assert.Empty(t, projects)
	})
}
