package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvesta/clawsec/config"
	"github.com/kvesta/clawsec/internal"
	"github.com/kvesta/clawsec/internal/log"
)

// ErrNoMatch is returned by "match" when the version is outside the range.
var ErrNoMatch = errors.New("version does not match")

type options struct {
	v *viper.Viper

	configPath     string
	verbosity      int
	outfile        string
	format         string
	showSuppressed bool
	failOnFindings bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "clawsec [OPTIONS]",
		Short: "Advisory guardian for OpenClaw skills",
		Long: `Clawsec checks installed skills against the security advisory feed,
honoring operator suppressions for the current pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check installed skills against the advisory feed",
		Args:  NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			return internal.DoCheck(context.Background(), internal.Check{
				Config:         cfg,
				Output:         cmd.OutOrStdout(),
				Format:         opts.format,
				OutFile:        opts.outfile,
				ShowSuppressed: opts.showSuppressed,
				FailOnFindings: opts.failOnFindings,
			})
		},
	}

	matchCmd := &cobra.Command{
		Use:   "match VERSION SPECIFIER",
		Short: "Test a version against a range such as \">=1.2.0\" or \"pkg@<2.0.0\"",
		Args:  MatchArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !internal.DoMatch(cmd.OutOrStdout(), args[0], args[1]) {
				return ErrNoMatch
			}
			return nil
		},
	}

	suppressionsCmd := &cobra.Command{
		Use:   "suppressions",
		Short: "Print the suppressions honored for the current pipeline",
		Args:  NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			return internal.DoSuppressions(cmd.OutOrStdout(), cfg)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and quit",
		Args:  NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versions)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")
	rootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().String("product", "", "product advisories must target (default \"openclaw\")")
	rootCmd.PersistentFlags().String("pipeline", "", "pipeline name used to gate suppressions (audit, advisory, watchdog)")
	rootCmd.PersistentFlags().String("suppression-config", "", "suppression config file")
	rootCmd.PersistentFlags().Bool("suppressions", false, "honor the suppression config")

	checkCmd.Flags().String("feed", "", "advisory feed file")
	checkCmd.Flags().String("skills", "", "installed skill inventory (YAML file or skills folder)")
	checkCmd.Flags().StringVarP(&opts.outfile, "output", "o", "", "also write the report as JSON to this file")
	checkCmd.Flags().StringVarP(&opts.format, "format", "f", "table", "report format: table or json")
	checkCmd.Flags().BoolVar(&opts.showSuppressed, "show-suppressed", false, "list suppressed findings")
	checkCmd.Flags().BoolVar(&opts.failOnFindings, "fail", false, "exit non-zero when unsuppressed findings remain")

	opts.bindFlags(rootCmd, checkCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(suppressionsCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func (o *options) bindFlags(root, check *cobra.Command) {
	for key, flag := range map[string]string{
		"product":             "product",
		"pipeline":            "pipeline",
		"suppression.config":  "suppression-config",
		"suppression.enabled": "suppressions",
		"log.structured":      "log-json",
	} {
		if err := o.v.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			log.Warnf("unable to bind flag %s: %v", flag, err)
		}
	}

	for _, key := range []string{"feed", "skills"} {
		if err := o.v.BindPFlag(key, check.Flags().Lookup(key)); err != nil {
			log.Warnf("unable to bind flag %s: %v", key, err)
		}
	}
}

func (o *options) loadConfig() (*config.Application, error) {
	cfg, err := config.LoadApplicationConfig(o.v, o.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.LevelOpt
	if o.verbosity > 0 {
		level = log.LevelFromVerbosity(o.verbosity)
	}
	log.Setup(log.Config{
		Level:      level,
		Structured: cfg.Log.Structured,
	})

	log.Debugf("config: product=%s pipeline=%s feed=%s skills=%s suppressions=%t",
		cfg.Product, cfg.Pipeline, cfg.Feed, cfg.Skills, cfg.Suppression.Enabled)

	return cfg, nil
}
