package suppression

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kvesta/clawsec/internal/log"
)

// SourceNone is the Result source when no suppressions were loaded.
const SourceNone = "none"

// Options controls whether a suppression config is honored for an invocation.
type Options struct {
	Enabled  bool
	Pipeline string

	// Logger receives warnings about unreadable or invalid configs. The package
	// logger is used when nil.
	Logger logrus.FieldLogger
}

// Result is the outcome of Load.
type Result struct {
	Source       string  `json:"source"`
	Suppressions []Entry `json:"suppressions"`
}

// Loaded reports whether suppressions were taken from a config file.
func (r Result) Loaded() bool {
	return r.Source != SourceNone
}

type configFile struct {
	EnabledFor   []string `json:"enabledFor"`
	Suppressions []Entry  `json:"suppressions"`
}

func none() Result {
	return Result{Source: SourceNone, Suppressions: []Entry{}}
}

// Load returns the suppressions declared in the config at path, provided the
// invocation is enabled and the config lists opts.Pipeline in enabledFor.
// Every failure to read or decode the config yields the "none" result.
func Load(path string, opts Options) Result {
	if !opts.Enabled {
		return none()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Get()
	}
	logger = logger.WithField("pipeline", opts.Pipeline)

	if strings.TrimSpace(path) == "" {
		logger.Debug("no suppression config configured")
		return none()
	}

	cfg, err := readConfig(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("ignoring suppression config")
		return none()
	}

	if !pipelineEnabled(cfg.EnabledFor, opts.Pipeline) {
		logger.WithField("path", path).Debug("suppression config not enabled for pipeline")
		return none()
	}

	entries := make([]Entry, 0, len(cfg.Suppressions))
	for i, e := range cfg.Suppressions {
		if strings.TrimSpace(e.CheckID) == "" || strings.TrimSpace(e.Skill) == "" {
			logger.WithField("index", i).Warn("suppression without checkId or skill can never match a finding")
		}
		if !validDate(e.SuppressedAt) {
			logger.WithFields(logrus.Fields{
				"checkId":      e.CheckID,
				"suppressedAt": e.SuppressedAt,
			}).Warn("suppression has no valid suppressedAt date")
		}
		entries = append(entries, e)
	}

	logger.WithFields(logrus.Fields{
		"path":         path,
		"suppressions": len(entries),
	}).Info("loaded suppression config")

	return Result{
		Source:       path,
		Suppressions: entries,
	}
}

func readConfig(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppression config: %w", err)
	}

	// tolerate a UTF-8 byte order mark written by some editors
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cfg := &configFile{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse suppression config: %w", err)
	}

	return cfg, nil
}

func pipelineEnabled(enabledFor []string, pipeline string) bool {
	pipeline = strings.ToLower(strings.TrimSpace(pipeline))
	if pipeline == "" {
		return false
	}

	for _, p := range enabledFor {
		if strings.ToLower(strings.TrimSpace(p)) == pipeline {
			return true
		}
	}
	return false
}

func validDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
