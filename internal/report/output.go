package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kvesta/clawsec/config"
	"github.com/kvesta/clawsec/internal/vulnscan"
	"github.com/kvesta/clawsec/pkg/suppression"
)

// ResolveReport prints the findings of a check as tables.
func ResolveReport(w io.Writer, r *vulnscan.Report, showSuppressed bool) error {

	critical, high, medium, low := 0, 0, 0, 0

	for _, f := range r.Findings {
		switch strings.ToLower(f.Advisory.Severity) {
		case "critical":
			critical += 1
		case "high":
			high += 1
		case "medium", "moderate":
			medium += 1
		case "low":
			low += 1
		default:
			// ignore
		}
	}

	fmt.Fprintf(w, "\nDetected %s advisories for %s | "+
		"Critical: %s High: %s Medium: %s Low: %s | Suppressed: %s\n",
		config.Yellow(len(r.Findings)),
		r.Product,
		config.Red(critical),
		config.Pink(high),
		config.Yellow(medium),
		config.Green(low),
		config.Cyan(len(r.Suppressed)))

	fmt.Fprintf(w, "Advisories checked: %d, out of scope: %d, suppression source: %s\n\n",
		r.Advisories, r.OutOfScope, r.SuppressionSource)

	if len(r.Findings) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"ID", "Skill", "Current Version", "Affected", "Advisory", "Severity", "Title"})
		table.SetRowLine(true)
		table.SetAutoMergeCellsByColumnIndex([]int{1})

		for i, f := range r.Findings {
			table.Append(findingRow(i, f))
		}
		table.Render()
	}

	if showSuppressed && len(r.Suppressed) > 0 {
		fmt.Fprintf(w, "\n\nSuppressed:\n")

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"ID", "Skill", "Current Version", "Affected", "Advisory", "Severity", "Reason"})
		table.SetRowLine(true)

		for i, s := range r.Suppressed {
			row := findingRow(i, s.Finding)
			row[len(row)-1] = reasons(s.AppliedEntries)
			table.Append(row)
		}
		table.Render()
	}

	return nil
}

// ResolveJSON writes the report as indented JSON.
func ResolveJSON(w io.Writer, r *vulnscan.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func findingRow(i int, f suppression.Finding) []string {
	title := f.Advisory.Title

	// Limit the length of title
	if len(title) > 120 {
		title = title[:120] + " ..."
	}

	return []string{
		strconv.Itoa(i + 1), f.Skill.Name, f.Skill.Version,
		f.Advisory.Affected, f.Advisory.ID,
		judgeSeverity(f.Advisory.Severity), title,
	}
}

func reasons(entries []suppression.Entry) string {
	rs := make([]string, 0, len(entries))
	for _, e := range entries {
		r := e.Reason
		if e.SuppressedAt != "" {
			r = fmt.Sprintf("%s (%s)", r, e.SuppressedAt)
		}
		rs = append(rs, r)
	}
	return strings.Join(rs, "\n")
}

func judgeSeverity(severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return config.Red(strings.ToUpper(severity))
	case "high":
		return config.Pink(strings.ToUpper(severity))
	case "medium", "moderate":
		return config.Yellow(strings.ToUpper(severity))
	case "low":
		return config.Green(strings.ToUpper(severity))
	case "":
		return "UNKNOWN"
	default:
		return strings.ToUpper(severity)
	}
}
