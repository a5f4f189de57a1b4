// Package cli wires the wbmodel commands.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags
var Version = "v0.1.0"

// app carries state shared by the commands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "wbmodel",
		Short: "wbmodel - content hashing and diffs for knowledge-base items",
		Long: `wbmodel works with items stored as YAML documents: labels, descriptions,
aliases, site links and statements with qualifiers and references.

It computes deterministic content hashes, diffs two revisions of an item
field by field, and tracks which items changed since they were last checked.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.wbmodel/config.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("json-logs", false, "emit logs as JSON")
	flags.String("format", config.FormatText, "output format (text, json, yaml)")
	flags.Int("workers", config.Default().Concurrency.Workers, "number of concurrent workers")

	_ = a.v.BindPFlag("output.verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("output.json_logs", flags.Lookup("json-logs"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("concurrency.workers", flags.Lookup("workers"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newHashCmd(a),
		newDiffCmd(a),
		newCheckCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	defer logger.Sync()
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display the version number of wbmodel.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wbmodel %s\n", Version)
		},
	}
}

// init reads the config file and environment, then starts logging
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(config.Dir())
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}
	config.BindEnv(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Initialize(cfg.Output.JSONLogs, cfg.Output.Verbose); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Logger.Debugw("using config file", "path", filepath.Clean(used))
	}
	return nil
}
