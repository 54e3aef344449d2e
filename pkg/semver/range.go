package semver

import (
	"fmt"
	"regexp"
	"strings"
)

// Wildcard matches every version.
const Wildcard = "*"

// operator group only matches on range operators, version group matches everything
// except whitespace, operators and separators
var comparatorPattern = regexp.MustCompile(`(?P<operator>[><=]*)\s*(?P<version>[^<>=\s,|]+)`)

type comparator struct {
	operator Operator
	version  string

	// explicit is false when the operator defaulted to EQ
	explicit bool
}

// Matches reports whether version satisfies specifier. Any parse failure, on
// either side, is reported as no match.
func Matches(version, specifier string) bool {
	ok, err := Satisfied(version, specifier)
	if err != nil {
		return false
	}
	return ok
}

// Satisfied evaluates version against specifier.
//
// A specifier is one or more comparators such as ">=1.2.0". Comparators separated
// by whitespace or commas must all hold; groups separated by "||" are alternatives.
// A comparator without an operator is an exact match against its version, so
// "1.2.0" behaves like "=1.2.0". "*" and the empty specifier match anything.
func Satisfied(version, specifier string) (bool, error) {
	specifier = strings.TrimSpace(specifier)
	if specifier == "" || specifier == Wildcard {
		return true, nil
	}

	current, err := Parse(version)
	if err != nil {
		return false, err
	}

	for _, phrase := range strings.Split(specifier, "||") {
		comparators, err := splitPhrase(phrase)
		if err != nil {
			return false, fmt.Errorf("invalid specifier %q: %w", specifier, err)
		}

		ok, err := allSatisfied(current, comparators)
		if err != nil {
			return false, fmt.Errorf("invalid specifier %q: %w", specifier, err)
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

func allSatisfied(current Version, comparators []comparator) (bool, error) {
	for _, c := range comparators {
		// a bare "*" inside a group holds for anything, "<*" does not parse
		if c.version == Wildcard && !c.explicit {
			continue
		}

		bound, err := Parse(c.version)
		if err != nil {
			return false, err
		}

		if !c.operator.Satisfied(current.Compare(bound)) {
			return false, nil
		}
	}

	return true, nil
}

func splitPhrase(phrase string) ([]comparator, error) {
	matches := comparatorPattern.FindAllStringSubmatch(phrase, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("empty version range")
	}

	result := make([]comparator, 0, len(matches))
	for _, match := range matches {
		item := make(map[string]string)
		for i, name := range comparatorPattern.SubexpNames() {
			if i != 0 && name != "" {
				item[name] = match[i]
			}
		}

		op, err := ParseOperator(item["operator"])
		if err != nil {
			return nil, err
		}

		result = append(result, comparator{
			operator: op,
			version:  item["version"],
			explicit: item["operator"] != "",
		})
	}

	return result, nil
}
