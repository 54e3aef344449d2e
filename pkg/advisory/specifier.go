package advisory

import (
	"strings"

	"github.com/kvesta/clawsec/pkg/semver"
)

// Specifier is an affected package descriptor such as "left-pkg@>=1.2.0".
type Specifier struct {
	Name        string `json:"name"`
	VersionSpec string `json:"versionSpec"`
}

// ParseSpecifier splits raw on its last "@". A raw value without "@", or whose
// only "@" opens the string (a scoped name such as "@scope/pkg"), is all name
// and matches any version.
func ParseSpecifier(raw string) Specifier {
	trimmed := strings.TrimSpace(raw)

	at := strings.LastIndex(trimmed, "@")
	if at <= 0 {
		return Specifier{
			Name:        trimmed,
			VersionSpec: semver.Wildcard,
		}
	}

	return Specifier{
		Name:        trimmed[:at],
		VersionSpec: trimmed[at+1:],
	}
}

// Matches reports whether version falls in the specifier's range.
func (s Specifier) Matches(version string) bool {
	return semver.Matches(version, s.VersionSpec)
}

func (s Specifier) String() string {
	return s.Name + "@" + s.VersionSpec
}
