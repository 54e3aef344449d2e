package suppression

import (
	"github.com/kvesta/clawsec/pkg/stringutil"
)

// Entry is an operator-authored suppression of one check for one skill.
type Entry struct {
	CheckID      string `json:"checkId"`
	Skill        string `json:"skill"`
	Reason       string `json:"reason"`
	SuppressedAt string `json:"suppressedAt"`
}

// Finding pairs an advisory with the skill it was matched against.
type Finding struct {
	Advisory AdvisoryRef `json:"advisory"`
	Skill    SkillRef    `json:"skill"`
}

type AdvisoryRef struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Severity string `json:"severity,omitempty"`
	// Affected is the specifier that matched, e.g. "soul-guardian@<1.4.0".
	Affected string `json:"affected,omitempty"`
}

type SkillRef struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// SuppressedFinding is a finding together with every entry that covered it.
type SuppressedFinding struct {
	Finding
	AppliedEntries []Entry
}

// Covers reports whether e silences f. The check id must match exactly, the
// skill name is compared case-insensitively.
func (e Entry) Covers(f Finding) bool {
	if e.CheckID != f.Advisory.ID {
		return false
	}
	return stringutil.NormalizeSkillName(e.Skill) == stringutil.NormalizeSkillName(f.Skill.Name)
}

// IsSuppressed reports whether any entry covers f.
func IsSuppressed(f Finding, entries []Entry) bool {
	for _, e := range entries {
		if e.Covers(f) {
			return true
		}
	}
	return false
}

// Apply splits findings into those still active and those silenced by at least
// one entry. Order within each group follows the input.
func Apply(findings []Finding, entries []Entry) ([]Finding, []SuppressedFinding) {
	var active []Finding
	var suppressed []SuppressedFinding

	for _, f := range findings {
		var applied []Entry
		for _, e := range entries {
			if e.Covers(f) {
				applied = append(applied, e)
			}
		}

		if len(applied) > 0 {
			suppressed = append(suppressed, SuppressedFinding{
				Finding:        f,
				AppliedEntries: applied,
			})
			continue
		}

		active = append(active, f)
	}

	return active, suppressed
}
