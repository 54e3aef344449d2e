package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kvesta/clawsec/internal/log"
	"github.com/kvesta/clawsec/pkg/advisory"
	"github.com/kvesta/clawsec/pkg/pathutil"
)

const (
	envPrefix = "CLAWSEC"

	defaultFeed     = "~/.openclaw/clawsec/feed.json"
	defaultSkills   = "~/.openclaw/skills.yaml"
	defaultPipeline = "audit"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

// Application is the resolved runtime configuration of one invocation.
type Application struct {
	ConfigPath  string      `mapstructure:"-"`
	Product     string      `mapstructure:"product"`
	Pipeline    string      `mapstructure:"pipeline"`
	Feed        string      `mapstructure:"feed"`
	Skills      string      `mapstructure:"skills"`
	Suppression suppression `mapstructure:"suppression"`
	Log         logging     `mapstructure:"log"`
}

type suppression struct {
	Enabled bool   `mapstructure:"enabled"`
	Config  string `mapstructure:"config"`
}

type logging struct {
	Level      string       `mapstructure:"level"`
	Structured bool         `mapstructure:"structured"`
	LevelOpt   logrus.Level `mapstructure:"-"`
}

func loadDefaultValues(v *viper.Viper) {
	v.SetDefault("product", advisory.DefaultProduct)
	v.SetDefault("pipeline", defaultPipeline)
	v.SetDefault("feed", defaultFeed)
	v.SetDefault("skills", defaultSkills)
	v.SetDefault("suppression.enabled", false)
	v.SetDefault("suppression.config", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.structured", false)
}

// LoadApplicationConfig reads an optional config file and overlays environment
// variables (CLAWSEC_FEED, CLAWSEC_SUPPRESSION_CONFIG, ...). Flags bound on v
// take precedence over both.
func LoadApplicationConfig(v *viper.Viper, configPath string) (*Application, error) {
	loadDefaultValues(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read application config: %w", err)
		}
	}

	cfg := &Application{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return cfg, nil
}

func (cfg *Application) parseConfigValues() error {
	cfg.Product = strings.ToLower(strings.TrimSpace(cfg.Product))
	if cfg.Product == "" {
		cfg.Product = advisory.DefaultProduct
	}
	cfg.Pipeline = strings.ToLower(strings.TrimSpace(cfg.Pipeline))
	if !knownPipeline(cfg.Pipeline) {
		log.Warnf("pipeline %q is not one of %s", cfg.Pipeline, strings.Join(Pipelines, ", "))
	}

	cfg.Feed = pathutil.Resolve(cfg.Feed, defaultFeedPath(), "CLAWSEC_FEED")
	cfg.Skills = pathutil.Resolve(cfg.Skills, defaultSkillsPath(), "CLAWSEC_SKILLS")
	if cfg.Suppression.Config != "" {
		cfg.Suppression.Config = pathutil.Resolve(cfg.Suppression.Config, "", "CLAWSEC_SUPPRESSION_CONFIG")
		if cfg.Suppression.Config == "." {
			cfg.Suppression.Config = ""
		}
	}

	return cfg.parseLogLevelOption()
}

func (cfg *Application) parseLogLevelOption() error {
	if cfg.Log.Level == "" {
		cfg.Log.LevelOpt = logrus.WarnLevel
		return nil
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.Log.Level)
	}
	cfg.Log.LevelOpt = lvl

	return nil
}

func knownPipeline(name string) bool {
	for _, p := range Pipelines {
		if p == name {
			return true
		}
	}
	return false
}

func defaultFeedPath() string {
	return expandDefault(defaultFeed)
}

func defaultSkillsPath() string {
	return expandDefault(defaultSkills)
}

// expandDefault resolves a built-in default the same way as an unset setting,
// so a rejected value falls back to the file an unset one would read.
func expandDefault(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(expanded)
}
