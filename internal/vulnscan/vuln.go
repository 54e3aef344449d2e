package vulnscan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kvesta/clawsec/internal/log"
	"github.com/kvesta/clawsec/pkg/advisory"
	"github.com/kvesta/clawsec/pkg/match"
	"github.com/kvesta/clawsec/pkg/skills"
	"github.com/kvesta/clawsec/pkg/stringutil"
	"github.com/kvesta/clawsec/pkg/suppression"
)

// Scan matches the in-scope advisories against every inventoried skill and
// splits the result by the scanner's suppressions.
func (s *Scanner) Scan(ctx context.Context, advisories []advisory.Advisory, inv *skills.Inventory) (*Report, error) {
	product := s.Product
	if product == "" {
		product = advisory.DefaultProduct
	}

	report := &Report{
		Product:           product,
		SuppressionSource: s.Suppressions.Source,
		Advisories:        len(advisories),
	}

	inScope := make([]advisory.Advisory, 0, len(advisories))
	for _, adv := range advisories {
		if !advisory.AppliesTo(adv, product) {
			log.Debugf("advisory %s does not target %s", adv.ID, product)
			report.OutOfScope++
			continue
		}
		inScope = append(inScope, adv)
	}

	perSkill := make([][]suppression.Finding, len(inv.Skills))

	g, gctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	for i, sk := range inv.Skills {
		i, sk := i, sk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perSkill[i] = checkSkill(sk, inScope)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []suppression.Finding
	for _, fs := range perSkill {
		findings = append(findings, fs...)
	}

	report.Findings, report.Suppressed = suppression.Apply(findings, s.Suppressions.Suppressions)
	sortFindings(report.Findings)
	sortSuppressed(report.Suppressed)

	warnNearMisses(s.Suppressions.Suppressions, inv.Names())

	return report, nil
}

// checkSkill returns at most one finding per advisory for sk.
func checkSkill(sk skills.Skill, advisories []advisory.Advisory) []suppression.Finding {
	name := stringutil.NormalizeSkillName(sk.Name)

	var findings []suppression.Finding
	for _, adv := range advisories {
		for _, spec := range adv.Specifiers() {
			if stringutil.NormalizeSkillName(spec.Name) != name {
				continue
			}

			if !spec.Matches(sk.Version) {
				continue
			}

			findings = append(findings, suppression.Finding{
				Advisory: suppression.AdvisoryRef{
					ID:       adv.ID,
					Title:    adv.Title,
					Severity: adv.Severity,
					Affected: spec.String(),
				},
				Skill: suppression.SkillRef{
					Name:    sk.Name,
					Version: sk.Version,
				},
			})
			break
		}
	}

	return findings
}

func warnNearMisses(entries []suppression.Entry, installed []string) {
	for _, e := range entries {
		if candidate, ok := match.NearMiss(e.Skill, installed); ok {
			log.WithFields(map[string]interface{}{
				"checkId":   e.CheckID,
				"skill":     e.Skill,
				"candidate": candidate,
			}).Warn("suppression names a skill that is not installed, did you mean the candidate?")
		}
	}
}
