package vulnscan

import (
	"github.com/kvesta/clawsec/pkg/suppression"
)

// Scanner evaluates advisories against the installed skills of one product.
type Scanner struct {
	// Product is the application an advisory must target to be considered.
	Product string

	// Suppressions are the entries returned by the suppression config gate for
	// this invocation.
	Suppressions suppression.Result

	// Concurrency bounds the number of skills evaluated at once, 0 means no limit.
	Concurrency int
}

type Report struct {
	Product           string `json:"product"`
	SuppressionSource string `json:"suppressionSource"`

	Advisories int `json:"advisories"`
	OutOfScope int `json:"outOfScope"`

	Findings   []suppression.Finding           `json:"findings"`
	Suppressed []suppression.SuppressedFinding `json:"suppressed"`
}
