// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cpsbridge/internal/config"
	"cpsbridge/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// appConfig is loaded once per invocation by initRootConfig.
	appConfig = config.DefaultConfig()

	// logger carries translation warnings to stderr.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cpsbridge",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cpsbridge",
		Short: "Translate between pkg-config and CPS package descriptions",
		Long: TitleStyle.Render("cpsbridge") + SubtitleStyle.Render(" - Translate between pkg-config and CPS package descriptions") + `

cpsbridge converts the flat pkg-config (.pc) format into the structured
Common Package Specification (CPS) JSON format and back again, so package
metadata can cross between the two ecosystems without hand-editing.

` + SubtitleStyle.Render("Examples:") + `
  cpsbridge from-pc zlib                 Resolve zlib via pkg-config and print CPS JSON
  cpsbridge from-pc ./mylib.pc           Translate a .pc file directly
  cpsbridge to-pc mylib.cps              Print one .pc document per component
  cpsbridge to-pc mylib.cps --output-dir ./pc
  cpsbridge config show                  Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cpsbridge/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(fromPcCmd)
	rootCmd.AddCommand(toPcCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	cfg, _, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Surface config loading problems but keep running on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	appConfig = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// failWithIssue prints the rendered help text for a cataloged issue and
// wraps err so the process exits non-zero without Cobra re-printing usage.
func failWithIssue(id issue.Id, err error) error {
	if rendered, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	return &ExitError{Code: 1, Err: err}
}
