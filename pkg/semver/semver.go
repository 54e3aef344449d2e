package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	version2 "github.com/hashicorp/go-version"
)

var (
	ErrInvalidVersion = errors.New("invalid semantic version")

	// exactly MAJOR.MINOR.PATCH, ASCII digits only
	corePattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
)

// Version is a parsed MAJOR.MINOR.PATCH triple.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64

	verObj *version2.Version
}

// Parse reads a version such as "1.2.3" or "v1.2.3". Pre-release and build
// suffixes, missing components and extra components are all rejected.
//
// Surrounding whitespace is trimmed with unicode.IsSpace, so U+0085 (NEL) is
// removed while U+FEFF (byte order mark) is not and fails the parse.
func Parse(raw string) (Version, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		s = s[1:]
	}

	if !corePattern.MatchString(s) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	verObj, err := version2.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, raw, err)
	}

	segments := verObj.Segments64()
	if len(segments) < 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	return Version{
		Major:  uint64(segments[0]),
		Minor:  uint64(segments[1]),
		Patch:  uint64(segments[2]),
		verObj: verObj,
	}, nil
}

// MustParse is meant for tests and constant inputs only.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other.
func (v Version) Compare(other Version) int {
	if v.verObj != nil && other.verObj != nil {
		return v.verObj.Compare(other.verObj)
	}

	switch {
	case v.Major != other.Major:
		return cmpUint(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint(v.Minor, other.Minor)
	default:
		return cmpUint(v.Patch, other.Patch)
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare parses both strings and compares them. An error is returned when either
// side is not a well-formed triple.
func Compare(a, b string) (int, error) {
	left, err := Parse(a)
	if err != nil {
		return 0, err
	}

	right, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return left.Compare(right), nil
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
