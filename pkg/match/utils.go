package match

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kvesta/clawsec/pkg/stringutil"
)

const (
	lowerRatio = 0.70
	upperRatio = 0.99
)

// Similarity returns a ratio in [0, 1] of how much two names share, computed
// from a character diff.
func Similarity(name1, name2 string) float64 {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(name1, name2, false)
	matches := 0
	for _, diff := range diffs {
		if diff.Type == diffmatchpatch.DiffEqual {
			matches += len(diff.Text)
		}
	}

	sums := len(name1) + len(name2)
	if sums > 0 {
		return 2.0 * float64(matches) / float64(sums)
	}

	return 1.0
}

// NearMiss returns the candidate that name most likely misspells. A candidate
// equal to name after normalization is not a near miss, and neither result is
// reported in that case.
func NearMiss(name string, candidates []string) (string, bool) {
	name = stringutil.NormalizeSkillName(name)

	best, bestRatio := "", 0.0
	for _, c := range candidates {
		normalized := stringutil.NormalizeSkillName(c)
		if normalized == name {
			return "", false
		}

		ratio := Similarity(name, normalized)
		if ratio < upperRatio && ratio > lowerRatio && ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}

	return best, best != ""
}
