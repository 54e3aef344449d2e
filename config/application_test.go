package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApplicationConfigDefaults(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "openclaw", cfg.Product)
	assert.Equal(t, "audit", cfg.Pipeline)
	assert.False(t, cfg.Suppression.Enabled)
	assert.Equal(t, "", cfg.Suppression.Config)
	assert.Equal(t, logrus.WarnLevel, cfg.Log.LevelOpt)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".openclaw", "clawsec", "feed.json"), cfg.Feed)
	assert.Equal(t, filepath.Join(home, ".openclaw", "skills.yaml"), cfg.Skills)
}

func TestLoadApplicationConfigEscapedHome(t *testing.T) {
	defaults, err := LoadApplicationConfig(viper.New(), "")
	require.NoError(t, err)

	t.Setenv("CLAWSEC_FEED", `\$HOME/feed.json`)
	t.Setenv("CLAWSEC_SKILLS", `\${HOME}/skills.yaml`)

	cfg, err := LoadApplicationConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, defaults.Feed, cfg.Feed)
	assert.Equal(t, defaults.Skills, cfg.Skills)
	assert.True(t, filepath.IsAbs(cfg.Feed), cfg.Feed)
}

func TestLoadApplicationConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clawsec.yaml")
	content := []byte(`product: OpenClaw
pipeline: Watchdog
feed: ` + filepath.Join(dir, "feed.json") + `
suppression:
  enabled: true
  config: ` + filepath.Join(dir, "suppression.json") + `
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	t.Setenv("CLAWSEC_SKILLS", filepath.Join(dir, "skills.yaml"))

	cfg, err := LoadApplicationConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, "openclaw", cfg.Product)
	assert.Equal(t, "watchdog", cfg.Pipeline)
	assert.Equal(t, filepath.Join(dir, "feed.json"), cfg.Feed)
	assert.Equal(t, filepath.Join(dir, "skills.yaml"), cfg.Skills)
	assert.True(t, cfg.Suppression.Enabled)
	assert.Equal(t, filepath.Join(dir, "suppression.json"), cfg.Suppression.Config)
	assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
}

func TestLoadApplicationConfigBadLevel(t *testing.T) {
	t.Setenv("CLAWSEC_LOG_LEVEL", "loud")

	_, err := LoadApplicationConfig(viper.New(), "")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestLoadApplicationConfigMissingFile(t *testing.T) {
	_, err := LoadApplicationConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestKnownPipeline(t *testing.T) {
	for _, p := range Pipelines {
		assert.True(t, knownPipeline(p), p)
	}
	assert.False(t, knownPipeline("release"))
	assert.False(t, knownPipeline(""))
}
