package internal

import (
	"io"

	"github.com/kvesta/clawsec/config"
)

// Check carries everything one "check" invocation needs.
type Check struct {
	Config *config.Application

	// Output receives the rendered report.
	Output io.Writer
	// Format is "table" or "json".
	Format string
	// OutFile, when set, also stores the report as JSON.
	OutFile string

	ShowSuppressed bool
	// FailOnFindings turns unsuppressed findings into ErrFindings.
	FailOnFindings bool
}
