// Package cmd provides the quotectl commands.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vehicle_quotation/internal/infrastructure/config"
	"vehicle_quotation/internal/infrastructure/logging"
)

// session is shared by the subcommands. Commands that need storage call load first.
type session struct {
	verbose bool
	cfg     *config.Config
	log     *zap.Logger
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	rt := &session{}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Operate the vehicle quotation service",
		Long: `quotectl prepares storage for the quotation API and prices quotations offline.

Configuration is read from the environment (and .env), like the API.

Examples:
  quotectl tables
  quotectl seed --file catalog.json
  quotectl price --file quote.json`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTablesCmd(rt))
	root.AddCommand(newSeedCmd(rt))
	root.AddCommand(newPriceCmd(rt))
	return root
}

// load reads configuration and builds the logger once per invocation.
func (rt *session) load() error {
	if rt.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if rt.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Config{Level: level, Format: "console", Output: "stderr"})
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.log = log
	return nil
}
