package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rmsexport/internal/config"
	"rmsexport/internal/host"
	"rmsexport/internal/job"
	"rmsexport/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rmsexport",
		Short: "Export volumetrics results from reservoir modeling jobs",
		Long: `rmsexport resolves which maps, grid properties and volume tables a
volumetrics job produced and exports them with metadata.

Jobs and project objects are read from the snapshot named in the config
file or by RMSEXPORT_SNAPSHOT.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", config.DefaultPath, "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.planCmd(),
		a.volumesCmd(),
		a.gridCmd(),
		a.structureCmd(),
		a.configCmd(),
		versionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.cfgPath, err)
	}

	log, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	return nil
}

// host returns the snapshot based host.
func (a *app) host() (job.Host, error) {
	snap, err := host.OpenSnapshot(a.cfg.Project.Snapshot, true)
	if err != nil {
		return job.Host{}, err
	}

	return job.Host{Jobs: snap, Projects: host.SnapshotProvider{}, Log: a.log}, nil
}

func (a *app) configCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		// the config file may not exist yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the --config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := os.Stat(a.cfgPath)
			switch {
			case err == nil && !force:
				return fmt.Errorf("config %s already exists (use --force to overwrite)", a.cfgPath)
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return err
			}

			if err := config.DefaultConfig().Save(a.cfgPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.cfgPath)

			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rmsexport %s\n", version)
		},
	}
}
