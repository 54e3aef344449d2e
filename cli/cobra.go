package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usageError(cmd *cobra.Command, problem string) error {
	return fmt.Errorf("\"%s\" %s.\nSee '%s --help'.\n\nUsage:  %s",
		cmd.CommandPath(), problem, cmd.CommandPath(), cmd.UseLine())
}

// NoArgs rejects positional arguments with a usage hint.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	return usageError(cmd, fmt.Sprintf("accepts no argument(s), got %q", args[0]))
}

// MatchArgs requires exactly a VERSION and a SPECIFIER, and VERSION must not be
// empty. An empty SPECIFIER is accepted and matches any version.
func MatchArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return usageError(cmd, fmt.Sprintf("requires VERSION and SPECIFIER, got %d argument(s)", len(args)))
	}

	if args[0] == "" {
		return usageError(cmd, "requires a non-empty VERSION")
	}

	return nil
}
