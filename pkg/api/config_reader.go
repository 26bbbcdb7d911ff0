package api

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	yaml "gopkg.in/yaml.v2"
)

// ConfigReader reads the trigger config from an optional file and the environment
type ConfigReader interface {
	ReadConfig(ctx context.Context) (*Config, error)
	WatchConfig(ctx context.Context, onChange func(*Config)) error
}

type configReaderImpl struct {
	configPath string
	lookuper   envconfig.Lookuper
}

// NewConfigReader returns a new api.ConfigReader; configPath may be empty to read from envvars only
func NewConfigReader(configPath string, lookuper envconfig.Lookuper) ConfigReader {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	return &configReaderImpl{
		configPath: configPath,
		lookuper:   lookuper,
	}
}

func (h *configReaderImpl) ReadConfig(ctx context.Context) (config *Config, err error) {

	config = &Config{}

	if h.configPath != "" {
		log.Debug().Msgf("Reading %v file...", h.configPath)

		data, err := os.ReadFile(h.configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed reading config file %v", h.configPath)
		}

		// unmarshal into structs
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "Failed unmarshalling config file %v", h.configPath)
		}
	}

	// override values from envvars
	err = envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   config,
		Lookuper: h.lookuper,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed overriding config from environment variables")
	}

	// fill in all the defaults for empty values
	config.SetDefaults()

	// validate the config
	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// WatchConfig re-reads the config whenever the config file changes and hands valid configs to onChange; it blocks until ctx is done
func (h *configReaderImpl) WatchConfig(ctx context.Context, onChange func(*Config)) error {
	if h.configPath == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Failed creating config file watcher")
	}
	defer watcher.Close()

	if err = watcher.Add(h.configPath); err != nil {
		return errors.Wrapf(err, "Failed watching config file %v", h.configPath)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// configmap mounts swap a symlink, which shows up as a remove
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				_ = watcher.Remove(h.configPath)
				if err := watcher.Add(h.configPath); err != nil {
					log.Warn().Err(err).Msgf("Failed re-watching config file %v", h.configPath)
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}

			config, err := h.ReadConfig(ctx)
			if err != nil {
				log.Error().Err(err).Msgf("Config file %v changed but is invalid, keeping previous config", h.configPath)
				continue
			}

			log.Info().Int("projects", len(config.Projects)).Msgf("Reloaded config file %v", h.configPath)
			onChange(config)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msgf("Watching config file %v failed", h.configPath)
		}
	}
}
