// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cpsbridge/internal/config"
)

// configCmd groups the configuration inspection subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cpsbridge configuration",
	Long: `Manage cpsbridge configuration.

Configuration is stored in:
  - Linux: ~/.config/cpsbridge/config.cue
  - macOS: ~/Library/Application Support/cpsbridge/config.cue
  - Windows: %APPDATA%\cpsbridge\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Current configuration:"))
	if path != "" {
		fmt.Println(SubtitleStyle.Render("  (loaded from " + path + ")"))
	} else {
		fmt.Println(SubtitleStyle.Render("  (built-in defaults, no config file found)"))
	}
	fmt.Println()
	fmt.Printf("  default_compiler: %s\n", cfg.DefaultCompiler)
	fmt.Printf("  default_prefix:   %s\n", cfg.DefaultPrefix)
	fmt.Printf("  pkg_config:       %s\n", cfg.PkgConfig)
	if len(cfg.LibraryPath) > 0 {
		fmt.Printf("  library_path:     %s\n", strings.Join(cfg.LibraryPath, string(filepath.ListSeparator)))
	}
	fmt.Printf("  ui.verbose:       %t\n", cfg.UI.Verbose)
	return nil
}

func showConfigPath() error {
	if cfgFile != "" {
		fmt.Println(cfgFile)
		return nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
