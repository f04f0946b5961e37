package commands

import (
	"github.com/spf13/cobra"

	"rowtrack/config"
	"rowtrack/pkg/logger"
)

type rootOpts struct {
	dbDriver string
	dbPath   string
	logMode  string

	cfg config.AppConfig
	log *logger.Logger
}

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:           "rowctl",
		Short:         "Import and maintain right-of-way project records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.dbDriver != "" {
				cfg.DBDriver = opts.dbDriver
			}
			if opts.dbPath != "" {
				cfg.DBPath = opts.dbPath
			}
			if opts.logMode != "" {
				cfg.LogMode = opts.logMode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				opts.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.dbDriver, "db-driver", "", "store driver: sqlite or postgres (default from DB_DRIVER)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db-path", "", "sqlite database file (default from DB_PATH)")
	root.PersistentFlags().StringVar(&opts.logMode, "log-mode", "", "dev or prod (default from LOG_MODE)")

	root.AddCommand(importCmd(opts), migrateCmd(opts))
	return root
}
