package plan

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rmsexport/internal/jobconfig"
)

// Resolver performs the resolution pipeline for one job configuration.
type Resolver struct {
	job *jobconfig.JobConfig
	log *zap.Logger
}

// NewResolver creates a new Resolver. A nil logger disables logging.
func NewResolver(job *jobconfig.JobConfig, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}

	return &Resolver{job: job, log: log.Named("plan")}
}

// Resolve runs the full resolution pipeline and returns an ExportPlan
// without a table. Structural problems abort with an error; absent
// optional selectors end up as warnings in plan.Diagnostics.
func (r *Resolver) Resolve() (*ExportPlan, error) {
	if r.job == nil {
		return nil, errors.New("job configuration is required")
	}

	in, err := r.job.FirstInput()
	if err != nil {
		return nil, err
	}

	out, err := r.job.FirstOutput()
	if err != nil {
		return nil, err
	}

	groups, err := r.job.FirstVariables()
	if err != nil {
		return nil, err
	}

	plan := &ExportPlan{}

	r.log.Debug("Extracting selectors", zap.Any("input", in))

	plan.Selectors, err = ResolveSelectors(*in, &plan.Diagnostics)
	if err != nil {
		return nil, fmt.Errorf("resolve selectors: %w", err)
	}

	plan.Diagnostics.Log(r.log)

	r.log.Debug("Extracting output", zap.Any("output", out))
	plan.Output = ResolveOutput(*out, plan.Selectors)

	r.log.Debug("Extracting variables", zap.Int("groups", len(groups)))

	plan.Variables, plan.AdditionalProperties, err = ResolveVariables(groups)
	if err != nil {
		return nil, fmt.Errorf("resolve variables: %w", err)
	}

	plan.Properties = append(plan.Properties, plan.AdditionalProperties...)

	r.log.Debug("Resolved export plan",
		zap.Strings("maps", plan.Maps),
		zap.Strings("properties", plan.Properties),
		zap.String("map_location", plan.MapLocation),
		zap.Strings("map_subfolders", plan.MapSubfolders),
		zap.Strings("additional_properties", plan.AdditionalProperties),
	)

	return plan, nil
}
