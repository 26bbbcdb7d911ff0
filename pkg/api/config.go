package api

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

var (
	// ErrMissingProjects is returned when no build projects are configured
	ErrMissingProjects = errors.New("missing projects")
	// ErrInvalidProjects is returned when the project list can't be parsed or contains blank names
	ErrInvalidProjects = errors.New("invalid projects")
	// ErrMissingEnvironment is returned when the environment label is not configured
	ErrMissingEnvironment = errors.New("missing environment")
	// ErrInvalidConcurrency is returned when the trigger concurrency is lower than 1
	ErrInvalidConcurrency = errors.New("invalid concurrency")
	// ErrInvalidSchedule is returned when the trigger schedule is not a valid cron expression
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// Config represents the configuration for a trigger invocation
type Config struct {
	Projects     ProjectList `yaml:"projects,omitempty" env:"CODEBUILD_PROJECTS, overwrite"`
	Environment  string      `yaml:"environment,omitempty" env:"ENVIRONMENT, overwrite"`
	Concurrency  int         `yaml:"concurrency,omitempty" env:"TRIGGER_CONCURRENCY, overwrite"`
	Schedule     string      `yaml:"schedule,omitempty" env:"TRIGGER_SCHEDULE, overwrite"`
	WebhookToken string      `yaml:"webhookToken,omitempty" env:"TRIGGER_WEBHOOK_TOKEN, overwrite"`
}

func (c *Config) SetDefaults() {
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
}

func (c *Config) Validate() (err error) {
	if len(c.Projects) == 0 {
		return errors.Wrap(ErrMissingProjects, "Configuration item 'projects' is required; please set it to a list of CodeBuild project names")
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p) == "" {
			return errors.Wrapf(ErrInvalidProjects, "Configuration item 'projects' has an empty project name at index %v", i)
		}
	}
	if strings.TrimSpace(c.Environment) == "" {
		return errors.Wrap(ErrMissingEnvironment, "Configuration item 'environment' is required; please set it to the label of the environment these agents serve")
	}
	if c.Concurrency < 1 {
		return errors.Wrapf(ErrInvalidConcurrency, "Configuration item 'concurrency' must be at least 1, got %v", c.Concurrency)
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return errors.Wrapf(ErrInvalidSchedule, "Configuration item 'schedule' value '%v' is not a valid cron expression: %v", c.Schedule, err)
		}
	}

	return nil
}

// ProjectList is the ordered list of CodeBuild project names to trigger
type ProjectList []string

// EnvDecode parses the project list from its serialized json form, for example ["alpha","beta"]
func (l *ProjectList) EnvDecode(value string) error {
	// unset variables are decoded as well; keep the current list and leave reporting it to Validate
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var projects []string
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		return errors.Wrapf(ErrInvalidProjects, "Project list %q is not a json array of strings: %v", value, err)
	}
	*l = projects

	return nil
}
