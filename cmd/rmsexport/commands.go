package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rmsexport/internal/export"
	"rmsexport/internal/job"
	"rmsexport/internal/jobconfig"
	"rmsexport/internal/metadata"
	"rmsexport/internal/plan"
)

func (a *app) planCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan <job.yml>",
		Short: "Resolve a volumetrics job file and print its export plan",
		Long: `Resolves the export plan of a volumetrics job read from a YAML or
JSON file. No project is opened, so the plan has no table attached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jc, err := jobconfig.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := jobconfig.Validate(jc)
			diags.Log(a.log)

			if err := diags.Error(); err != nil {
				return fmt.Errorf("invalid job %s: %w", args[0], err)
			}

			p, err := plan.NewResolver(jc, a.log).Resolve()
			if err != nil {
				return err
			}

			if output != "" {
				return plan.WriteFile(p, output)
			}

			data, err := plan.Marshal(p)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan to this file instead of stdout")

	return cmd
}

func (a *app) volumesCmd() *cobra.Command {
	var gridName, jobName string

	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Export the maps, properties and table of a volumetrics job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			h, err := a.host()
			if err != nil {
				return err
			}

			lv, err := job.InplaceVolumes{
				Project:  a.cfg.Project.Snapshot,
				GridName: gridName,
				JobName:  jobName,
			}.Load(ctx, h)
			if err != nil {
				return err
			}

			res, err := lv.Export(ctx, export.NewFileSink(a.cfg.Export.OutputDir, a.cfg.Format(), a.globalConfig()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range res.Files {
				fmt.Fprintln(out, f)
			}

			fmt.Fprintf(out, "Exported %d objects\n", res.Count)

			return nil
		},
	}

	cmd.Flags().StringVar(&gridName, "grid", "", "grid model the job belongs to")
	cmd.Flags().StringVar(&jobName, "job", "", "volumetrics job name")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

// globalConfig loads the global variables file. Without it metadata is
// written without model information.
func (a *app) globalConfig() *metadata.GlobalConfig {
	gc, err := metadata.LoadGlobalConfig(a.cfg.Export.GlobalConfig)
	if err != nil {
		level := zap.WarnLevel
		if errors.Is(err, metadata.ErrNoModel) {
			level = zap.ErrorLevel
		}

		a.log.Log(level, "Global config not loaded", zap.String("path", a.cfg.Export.GlobalConfig), zap.Error(err))

		return nil
	}

	return gc
}

func (a *app) gridCmd() *cobra.Command {
	var gridName, jobName string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the arguments of a grid building job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.host()
			if err != nil {
				return err
			}

			loaded, err := job.Grid{Project: a.cfg.Project.Snapshot, GridName: gridName, JobName: jobName}.Load(cmd.Context(), h)
			if err != nil {
				return err
			}

			return printArguments(cmd, loaded.Params)
		},
	}

	cmd.Flags().StringVar(&gridName, "grid", "", "grid model name")
	cmd.Flags().StringVar(&jobName, "job", "", "grid job name")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func (a *app) structureCmd() *cobra.Command {
	var sm job.StructuralModel

	cmd := &cobra.Command{
		Use:   "structure",
		Short: "Print the arguments of a horizon modeling job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.host()
			if err != nil {
				return err
			}

			sm.Project = a.cfg.Project.Snapshot

			loaded, err := sm.Load(cmd.Context(), h)
			if err != nil {
				return err
			}

			return printArguments(cmd, loaded.Params)
		},
	}

	cmd.Flags().StringVar(&sm.StructuralModelName, "model", "", "structural model name")
	cmd.Flags().StringVar(&sm.HorizonModelName, "horizons", "", "horizon model name")
	cmd.Flags().StringVar(&sm.JobName, "job", "", "horizon modeling job name")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("horizons")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func printArguments(cmd *cobra.Command, args *jobconfig.Arguments) error {
	data, err := args.Marshal()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
