package suppression

import (
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

func finding(id, skill string) Finding {
	return Finding{
		Advisory: AdvisoryRef{ID: id},
		Skill:    SkillRef{Name: skill},
	}
}

func TestIsSuppressed(t *testing.T) {
	entries := []Entry{
		{CheckID: "CLAW-2026-0001", Skill: "soul-guardian", Reason: "accepted", SuppressedAt: "2026-02-25"},
		{CheckID: "SCAN-001", Skill: "  Clawsec-Suite ", Reason: "false positive", SuppressedAt: "2026-02-25"},
	}

	tests := []struct {
		name    string
		finding Finding
		entries []Entry
		want    bool
	}{
		{name: "exact", finding: finding("CLAW-2026-0001", "soul-guardian"), entries: entries, want: true},
		{name: "skillCase", finding: finding("CLAW-2026-0001", "SOUL-GUARDIAN"), entries: entries, want: true},
		{name: "skillPadded", finding: finding("SCAN-001", "clawsec-suite"), entries: entries, want: true},
		{name: "idCase", finding: finding("claw-2026-0001", "soul-guardian"), entries: entries, want: false},
		{name: "otherSkill", finding: finding("CLAW-2026-0001", "clawsec-suite"), entries: entries, want: false},
		{name: "noEntries", finding: finding("CLAW-2026-0001", "soul-guardian"), entries: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSuppressed(tt.finding, tt.entries); got != tt.want {
				t.Errorf("IsSuppressed() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// printable maps arbitrary bytes onto printable ASCII so case folding is lossless.
func printable(raw []byte) string {
	b := make([]byte, len(raw))
	for i, c := range raw {
		b[i] = ' ' + c%95
	}
	return string(b)
}

func TestIsSuppressedAnyCaseSkill(t *testing.T) {
	f := func(rawID, rawSkill []byte) bool {
		id, skill := printable(rawID), printable(rawSkill)
		if id == "" || skill == "" {
			return true
		}
		entries := []Entry{{CheckID: id, Skill: strings.ToLower(skill), Reason: "fuzz", SuppressedAt: "2026-02-25"}}
		return IsSuppressed(finding(id, strings.ToUpper(skill)), entries)
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 250}); err != nil {
		t.Error(err)
	}
}

func TestIsSuppressedDifferentID(t *testing.T) {
	f := func(targetID, otherID, skill string) bool {
		differentID := otherID
		if targetID == otherID {
			differentID = otherID + "-x"
		}
		entries := []Entry{{CheckID: differentID, Skill: skill, Reason: "fuzz", SuppressedAt: "2026-02-25"}}
		return !IsSuppressed(finding(targetID, skill), entries)
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 250}); err != nil {
		t.Error(err)
	}
}

func TestApply(t *testing.T) {
	entries := []Entry{
		{CheckID: "A-1", Skill: "alpha", Reason: "first"},
		{CheckID: "A-1", Skill: "ALPHA", Reason: "second"},
		{CheckID: "A-2", Skill: "beta", Reason: "third"},
	}
	findings := []Finding{
		finding("A-1", "Alpha"),
		finding("A-1", "beta"),
		finding("A-2", "beta"),
		finding("A-3", "gamma"),
	}

	active, suppressed := Apply(findings, entries)

	wantActive := []Finding{finding("A-1", "beta"), finding("A-3", "gamma")}
	if !reflect.DeepEqual(active, wantActive) {
		t.Errorf("Apply() active got = %v, want %v", active, wantActive)
	}

	wantSuppressed := []SuppressedFinding{
		{Finding: finding("A-1", "Alpha"), AppliedEntries: entries[:2]},
		{Finding: finding("A-2", "beta"), AppliedEntries: entries[2:]},
	}
	if !reflect.DeepEqual(suppressed, wantSuppressed) {
		t.Errorf("Apply() suppressed got = %v, want %v", suppressed, wantSuppressed)
	}
}
