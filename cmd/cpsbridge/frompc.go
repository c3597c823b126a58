// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpsbridge/internal/issue"
	"cpsbridge/internal/libresolve"
	"cpsbridge/internal/pcresolver"
	"cpsbridge/internal/translate"
	"cpsbridge/pkg/pcfile"
)

var (
	fromPcLibrary        string
	fromPcType           string
	fromPcLibsToRequires bool
	fromPcKeepLibs       []string

	// fromPcCmd translates a flat .pc description into CPS JSON on stdout.
	fromPcCmd = &cobra.Command{
		Use:   "from-pc <name-or-file>",
		Short: "Translate a pkg-config package into a CPS document",
		Long: `Translate a pkg-config package into a CPS document.

The argument is either a path to a .pc file or a bare package name. Bare
names are resolved to a file path by invoking the external pkg-config
binary (configurable via pkg_config in the config file).

The generated CPS JSON is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: runFromPc,
	}
)

func init() {
	fromPcCmd.Flags().StringVar(&fromPcLibrary, "library", "", "override the library name used for artifact lookup")
	fromPcCmd.Flags().StringVar(&fromPcType, "type", "shared", "preferred artifact type (shared, static)")
	fromPcCmd.Flags().BoolVar(&fromPcLibsToRequires, "libs-to-requires", false, "convert -l link libraries into dependencies")
	fromPcCmd.Flags().StringArrayVar(&fromPcKeepLibs, "keep-lib", nil, "link library to exempt from --libs-to-requires (repeatable)")
}

func runFromPc(cmd *cobra.Command, args []string) error {
	preferred, err := libresolve.ParseArtifactType(fromPcType)
	if err != nil {
		return err
	}

	path, err := resolvePcPath(cmd, args[0])
	if err != nil {
		return err
	}
	logger.Debug("translating flat description", "path", path)

	f, err := pcfile.Parse(path)
	if err != nil {
		return failWithIssue(issue.FlatParseErrorId, err)
	}

	pkg, err := translate.FromPC(f, translate.FromPCOptions{
		LibraryName:     fromPcLibrary,
		Preferred:       preferred,
		LibsToRequires:  fromPcLibsToRequires,
		KeepLibs:        fromPcKeepLibs,
		ExtraSearchDirs: appConfig.LibraryPath,
	})
	if err != nil {
		return failWithIssue(issue.FlatParseErrorId, err)
	}

	return pkg.Write(os.Stdout)
}

// resolvePcPath maps the command argument to a .pc file path. An argument
// naming an existing file is used as-is; anything else is treated as a
// package name and handed to the external resolver.
func resolvePcPath(cmd *cobra.Command, arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	resolver := pcresolver.New(appConfig.PkgConfig)
	path, err := resolver.Resolve(cmd.Context(), arg)
	if err != nil {
		if errors.Is(err, pcresolver.ErrNotFound) {
			return "", failWithIssue(issue.PackageNotFoundId, err)
		}
		return "", fmt.Errorf("failed to resolve package %q: %w", arg, err)
	}
	logger.Debug("resolved package", "name", arg, "path", path)
	return path, nil
}
