package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const rule = "═══════════════════════════════════════════════════════════"

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wbmodel configuration",
		Long: `Manage wbmodel configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (WBMODEL_*)
3. Config file (~/.wbmodel/config.yaml)
4. Defaults`,
	}
	configCmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd())
	return configCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration after applying defaults, config file, environment variables and flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
			}

			yamlData, err := yaml.Marshal(a.cfg)
			if err != nil {
				return errors.Wrap(err, "marshal config")
			}

			fmt.Fprintln(out, rule)
			fmt.Fprintln(out, "  Current Configuration")
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out)
			fmt.Fprintln(out, string(yamlData))
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Configuration hierarchy (highest to lowest priority):")
			fmt.Fprintln(out, "  1. CLI flags")
			fmt.Fprintf(out, "  2. Environment variables (%s_*)\n", config.EnvPrefix)
			fmt.Fprintln(out, "  3. Config file (~/.wbmodel/config.yaml)")
			fmt.Fprintln(out, "  4. Defaults")
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration file",
		Long:  `Create a default configuration file at ~/.wbmodel/config.yaml with all available options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = filepath.Join(config.Dir(), "config.yaml")
			}

			if _, statErr := os.Stat(configPath); statErr == nil {
				return errors.WithHint(
					errors.Newf("config file already exists: %s", configPath),
					"use 'wbmodel config show' to view it, or delete it first to recreate")
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
				return errors.Wrap(err, "create config directory")
			}

			yamlData, err := yaml.Marshal(config.Default())
			if err != nil {
				return errors.Wrap(err, "marshal config")
			}

			header := "# wbmodel configuration file\n" +
				"#\n" +
				"# Configuration hierarchy (highest to lowest priority):\n" +
				"#   1. CLI flags\n" +
				"#   2. Environment variables (WBMODEL_*, e.g. WBMODEL_CACHE_DIR)\n" +
				"#   3. This config file\n" +
				"#   4. Built-in defaults\n" +
				"#\n" +
				"# A TTL of 0s keeps recorded revision hashes forever.\n\n"

			if err := os.WriteFile(configPath, append([]byte(header), yamlData...), 0o644); err != nil {
				return errors.Wrap(err, "write config")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created default configuration: %s\n", configPath)
			fmt.Fprintf(out, "\nTo view the configuration:\n")
			fmt.Fprintf(out, "  wbmodel config show\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "path", "", "where to write the file (default: $HOME/.wbmodel/config.yaml)")
	return cmd
}
