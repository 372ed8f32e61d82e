package job

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rmsexport/internal/export"
	"rmsexport/internal/host"
	"rmsexport/internal/jobconfig"
	"rmsexport/internal/plan"
	"rmsexport/internal/volumes"
)

// Job types as the host names them.
const (
	TypeVolumetrics     = "Volumetrics"
	TypeCreateGrid      = "Create Grid"
	TypeHorizonModeling = "Horizon Modeling"
)

// Host bundles the collaborators a job is loaded from.
type Host struct {
	Jobs     host.JobSource
	Projects host.ProjectProvider
	Log      *zap.Logger
}

func (h Host) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}

	return h.Log
}

// GridOwner is the owner path of jobs attached to a grid model.
func GridOwner(gridName string) []string {
	return []string{"Grid models", gridName, "Grid"}
}

// StructuralOwner is the owner path of jobs attached to a horizon model.
func StructuralOwner(structuralModel, horizonModel string) []string {
	return []string{"Structural models", structuralModel, horizonModel}
}

// Loaded holds what every job has after Load.
type Loaded struct {
	Params  *jobconfig.Arguments
	Project host.Project
}

func load(ctx context.Context, h Host, projectID string, owner []string, jobType, jobName string) (*Loaded, error) {
	params, err := h.Jobs.JobArguments(ctx, owner, jobType, jobName)
	if err != nil {
		return nil, fmt.Errorf("get %s job %q: %w", jobType, jobName, err)
	}

	project, err := h.Projects.Project(ctx, projectID, true)
	if err != nil {
		return nil, fmt.Errorf("open project %q: %w", projectID, err)
	}

	return &Loaded{Params: params, Project: project}, nil
}

// InplaceVolumes exports data related to a volumetrics job.
type InplaceVolumes struct {
	Project  string
	GridName string
	JobName  string
}

// LoadedVolumes is a volumetrics job ready to export.
type LoadedVolumes struct {
	Loaded
	GridName string
	JobName  string
	Plan     *plan.ExportPlan

	log *zap.Logger
}

// Load fetches the job and project and resolves the export plan.
func (iv InplaceVolumes) Load(ctx context.Context, h Host) (*LoadedVolumes, error) {
	log := h.logger().With(zap.String("job", iv.JobName), zap.String("grid", iv.GridName))

	base, err := load(ctx, h, iv.Project, GridOwner(iv.GridName), TypeVolumetrics, iv.JobName)
	if err != nil {
		return nil, err
	}

	jc, err := base.Params.JobConfig()
	if err != nil {
		return nil, fmt.Errorf("decode %s job %q: %w", TypeVolumetrics, iv.JobName, err)
	}

	p, err := plan.NewResolver(jc, log).Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve %s job %q: %w", TypeVolumetrics, iv.JobName, err)
	}

	table, _, err := volumes.Load(ctx, base.Project, jc.FirstReport(), log)
	if err != nil {
		return nil, err
	}

	p.AttachTable(table)

	return &LoadedVolumes{
		Loaded:   *base,
		GridName: iv.GridName,
		JobName:  iv.JobName,
		Plan:     p,
		log:      log,
	}, nil
}

// Export writes the plan's objects to sink.
func (lv *LoadedVolumes) Export(ctx context.Context, sink export.Sink) (*export.Result, error) {
	return export.NewExporter(lv.Project, sink, lv.log).Export(ctx, lv.Plan, lv.GridName, lv.JobName)
}

// Grid refers to a grid building job.
type Grid struct {
	Project  string
	GridName string
	JobName  string
}

// Load fetches the grid job arguments and opens the project.
func (g Grid) Load(ctx context.Context, h Host) (*Loaded, error) {
	return load(ctx, h, g.Project, GridOwner(g.GridName), TypeCreateGrid, g.JobName)
}

// StructuralModel refers to a horizon modeling job.
type StructuralModel struct {
	Project             string
	StructuralModelName string
	HorizonModelName    string
	JobName             string
}

// Load fetches the horizon modeling job arguments and opens the project.
func (sm StructuralModel) Load(ctx context.Context, h Host) (*Loaded, error) {
	owner := StructuralOwner(sm.StructuralModelName, sm.HorizonModelName)
	return load(ctx, h, sm.Project, owner, TypeHorizonModeling, sm.JobName)
}
