package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kvesta/clawsec/config"
	"github.com/kvesta/clawsec/internal/log"
	"github.com/kvesta/clawsec/internal/report"
	"github.com/kvesta/clawsec/internal/vulnscan"
	"github.com/kvesta/clawsec/pkg/advisory"
	"github.com/kvesta/clawsec/pkg/semver"
	"github.com/kvesta/clawsec/pkg/skills"
	"github.com/kvesta/clawsec/pkg/suppression"
)

var ErrFindings = errors.New("unsuppressed advisories found")

// LoadSuppressions runs the suppression config gate for cfg.
func LoadSuppressions(cfg *config.Application) suppression.Result {
	return suppression.Load(cfg.Suppression.Config, suppression.Options{
		Enabled:  cfg.Suppression.Enabled,
		Pipeline: cfg.Pipeline,
		Logger:   log.Get(),
	})
}

// DoCheck matches the advisory feed against the skill inventory and renders
// the report.
func DoCheck(ctx context.Context, c Check) error {
	cfg := c.Config

	advisories, err := advisory.LoadFeed(cfg.Feed)
	if err != nil {
		return err
	}
	log.Infof("loaded %d advisories from %s", len(advisories), cfg.Feed)

	inv, err := skills.LoadInventory(cfg.Skills)
	if err != nil {
		return err
	}
	log.Infof("loaded %d skills from %s", len(inv.Skills), cfg.Skills)

	scanner := &vulnscan.Scanner{
		Product:      cfg.Product,
		Suppressions: LoadSuppressions(cfg),
	}

	r, err := scanner.Scan(ctx, advisories, inv)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	switch strings.ToLower(c.Format) {
	case "json":
		err = report.ResolveJSON(c.Output, r)
	case "", "table":
		err = report.ResolveReport(c.Output, r, c.ShowSuppressed)
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if err != nil {
		return err
	}

	if c.OutFile != "" {
		if err := report.WriteFile(c.OutFile, r); err != nil {
			return err
		}
	}

	if c.FailOnFindings && len(r.Findings) > 0 {
		return fmt.Errorf("%w: %d", ErrFindings, len(r.Findings))
	}

	return nil
}

// DoMatch prints whether version satisfies specifier. specifier may be a bare
// range (">=1.2.0") or a full affected descriptor ("pkg@>=1.2.0").
func DoMatch(w io.Writer, version, specifier string) bool {
	spec := specifier
	if strings.Contains(specifier, "@") {
		spec = advisory.ParseSpecifier(specifier).VersionSpec
	}

	ok, err := semver.Satisfied(version, spec)
	if err != nil {
		fmt.Fprintf(w, "%s %s does not match %s: %v\n", config.Red("✗"), version, spec, err)
		return false
	}

	if ok {
		fmt.Fprintf(w, "%s %s matches %s\n", config.Green("✓"), version, spec)
	} else {
		fmt.Fprintf(w, "%s %s does not match %s\n", config.Yellow("✗"), version, spec)
	}

	return ok
}

// DoSuppressions prints the suppression config gate result as JSON.
func DoSuppressions(w io.Writer, cfg *config.Application) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(LoadSuppressions(cfg))
}
