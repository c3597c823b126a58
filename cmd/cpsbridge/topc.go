// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cpsbridge/internal/issue"
	"cpsbridge/internal/translate"
	"cpsbridge/pkg/cpsfile"
	"cpsbridge/pkg/platform"
)

var (
	toPcOutputDir  string
	toPcOutputFile string
	toPcCompiler   string
	toPcKernel     string
	toPcPrefix     string

	// toPcCmd regenerates flat .pc descriptions from a CPS document.
	toPcCmd = &cobra.Command{
		Use:   "to-pc <file.cps>",
		Short: "Translate a CPS document into pkg-config packages",
		Long: `Translate a CPS document into pkg-config packages.

Each translatable component of the CPS package becomes one .pc document.
By default the documents are printed to stdout; --output-dir writes one
<component>.pc file per component, and --output-file writes a single
document (only valid when exactly one component translates).

Compile features and definitions are rendered for the compiler selected
with --compiler, link features for the kernel selected with --kernel.`,
		Args: cobra.ExactArgs(1),
		RunE: runToPc,
	}
)

func init() {
	toPcCmd.Flags().StringVar(&toPcOutputDir, "output-dir", "", "write one <component>.pc file per component into this directory")
	toPcCmd.Flags().StringVar(&toPcOutputFile, "output-file", "", "write a single .pc file to this path")
	toPcCmd.Flags().StringVar(&toPcCompiler, "compiler", "", "compiler flavor for flag rendering (gcc, clang, msvc)")
	toPcCmd.Flags().StringVar(&toPcKernel, "kernel", "", "kernel flavor for link-feature rendering (default: host)")
	toPcCmd.Flags().StringVar(&toPcPrefix, "prefix", "", "installation prefix substituted for @prefix@ tokens")
	toPcCmd.MarkFlagsMutuallyExclusive("output-dir", "output-file")
}

func runToPc(cmd *cobra.Command, args []string) error {
	compiler := toPcCompiler
	if compiler == "" {
		compiler = appConfig.DefaultCompiler
	}
	if !platform.IsCompiler(compiler) {
		return failWithIssue(issue.UnknownCompilerId, fmt.Errorf("unknown compiler %q", compiler))
	}
	prefix := toPcPrefix
	if prefix == "" {
		prefix = appConfig.DefaultPrefix
	}

	pkg, err := cpsfile.Parse(args[0])
	if err != nil {
		return failWithIssue(issue.CpsParseErrorId, err)
	}

	outputs, err := translate.ToPC(pkg, translate.ToPCOptions{
		Compiler: compiler,
		Kernel:   toPcKernel,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	if len(outputs) == 0 {
		logger.Warn("no translatable components", "package", pkg.Name)
		return nil
	}

	switch {
	case toPcOutputFile != "":
		if len(outputs) > 1 {
			return failWithIssue(issue.OutputModeConflictId,
				fmt.Errorf("package %q has %d translatable components, --output-file can hold one", pkg.Name, len(outputs)))
		}
		if err := outputs[0].Document.WriteFile(toPcOutputFile, prefix); err != nil {
			return err
		}
		fmt.Printf("%s Wrote %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(toPcOutputFile))
	case toPcOutputDir != "":
		if err := os.MkdirAll(toPcOutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, out := range outputs {
			if platform.IsWindowsReservedName(out.Component) {
				logger.Warn("component name is reserved on Windows filesystems", "component", out.Component)
			}
			path := filepath.Join(toPcOutputDir, out.Component+".pc")
			if err := out.Document.WriteFile(path, prefix); err != nil {
				return err
			}
			fmt.Printf("%s Wrote %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path))
		}
	default:
		for i, out := range outputs {
			if i > 0 {
				fmt.Println()
			}
			if len(outputs) > 1 {
				fmt.Println(SubtitleStyle.Render("# component: " + out.Component))
			}
			fmt.Print(out.Document.Render(prefix))
		}
	}
	return nil
}
