package vulnscan

import (
	"sort"
	"strings"

	"github.com/kvesta/clawsec/config"
	"github.com/kvesta/clawsec/pkg/suppression"
)

func lessFinding(a, b suppression.Finding) bool {
	sa := config.SeverityMap[strings.ToLower(a.Advisory.Severity)]
	sb := config.SeverityMap[strings.ToLower(b.Advisory.Severity)]
	if sa != sb {
		return sa > sb
	}
	if a.Advisory.ID != b.Advisory.ID {
		return a.Advisory.ID < b.Advisory.ID
	}
	return a.Skill.Name < b.Skill.Name
}

func sortFindings(findings []suppression.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return lessFinding(findings[i], findings[j])
	})
}

func sortSuppressed(findings []suppression.SuppressedFinding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return lessFinding(findings[i].Finding, findings[j].Finding)
	})
}
