package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/kvesta/clawsec/internal/log"
)

var homePrefixes = []string{"${HOME}", "$HOME"}

// Resolve turns a configured path into a cleaned absolute-or-relative path.
//
// "~", "$HOME" and "${HOME}" prefixes are expanded. An escaped "\$" means the
// value reached us unexpanded from a shell or unit file, so it is rejected and
// fallback is used instead. label names the setting in warnings.
func Resolve(raw, fallback, label string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return filepath.Clean(fallback)
	}

	if strings.Contains(value, `\$`) {
		log.Warnf("%s contains an escaped variable (%q), using %s", label, value, fallback)
		return filepath.Clean(fallback)
	}

	expanded, err := expandHome(value)
	if err != nil {
		log.Warnf("unable to expand %s (%q): %v, using %s", label, value, err, fallback)
		return filepath.Clean(fallback)
	}

	return filepath.Clean(expanded)
}

func expandHome(value string) (string, error) {
	for _, prefix := range homePrefixes {
		if value != prefix && !strings.HasPrefix(value, prefix+"/") {
			continue
		}

		home, err := homedir.Dir()
		if err != nil {
			return "", err
		}
		return home + strings.TrimPrefix(value, prefix), nil
	}

	return homedir.Expand(value)
}
