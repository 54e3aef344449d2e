package stringutil

import "strings"

// NormalizeSkillName trims and lowercases a skill name for comparison.
func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UniqueStrings drops repeated values, keeping the first occurrence of each.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
