package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rmsexport/internal/common"
	"rmsexport/internal/diagnostic"
	"rmsexport/internal/host"
	"rmsexport/internal/metadata"
	"rmsexport/internal/plan"
	"rmsexport/internal/volumes"
)

// Result summarizes one export run.
type Result struct {
	// Count is the number of objects exported.
	Count int
	// Files are the written paths, in export order.
	Files       []string
	Diagnostics diagnostic.Diagnostics
}

// Exporter exports everything an ExportPlan names.
type Exporter struct {
	project host.Project
	sink    Sink
	log     *zap.Logger
}

// NewExporter creates an Exporter. A nil logger disables logging.
func NewExporter(project host.Project, sink Sink, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Exporter{project: project, sink: sink, log: log.Named("export")}
}

// SurfaceFolder is the project folder a volumetrics job stores zone maps in.
func SurfaceFolder(jobName, zone string) string {
	return fmt.Sprintf("Volumetrics_%s/%s", jobName, zone)
}

// Export writes the plan's maps, properties and table. parent is the grid
// model the job belongs to and jobName becomes the tag name. Missing
// objects are warnings; lookup or write failures abort the run.
// Result.Diagnostics starts with the findings of plan resolution.
func (e *Exporter) Export(ctx context.Context, p *plan.ExportPlan, parent, jobName string) (*Result, error) {
	res := &Result{}
	res.Diagnostics.Merge(p.Diagnostics)

	if err := e.exportMaps(ctx, p, jobName, res); err != nil {
		return res, err
	}

	if err := e.exportProperties(ctx, p, parent, jobName, res); err != nil {
		return res, err
	}

	if err := e.exportTable(ctx, p, parent, jobName, res); err != nil {
		return res, err
	}

	e.log.Info(fmt.Sprintf("Exported %d objects", res.Count), zap.Int("count", res.Count))

	return res, nil
}

func (e *Exporter) exportMaps(ctx context.Context, p *plan.ExportPlan, jobName string, res *Result) error {
	for _, mapName := range p.Maps {
		for _, zone := range p.MapSubfolders {
			folder := SurfaceFolder(jobName, zone)
			e.log.Debug("Fetching surface", zap.String("name", mapName), zap.String("folder", folder))

			surf, ok, err := e.project.Surface(ctx, mapName, folder, p.MapLocation)
			if err != nil {
				return fmt.Errorf("fetch surface %s in %s: %w", mapName, folder, err)
			}

			if !ok {
				e.warn(res, diagnostic.CodeSurfaceMissing, fmt.Sprintf("No surface called %s", mapName), folder, mapName)
				continue
			}

			path, err := e.sink.ExportSurface(ctx, surf, metadata.Request{
				Name:      mapName,
				TagName:   jobName,
				Content:   metadata.ContentProperty,
				Subfolder: zone,
			})
			if err != nil {
				return fmt.Errorf("export surface %s: %w", mapName, err)
			}

			e.exported(res, path)
		}
	}

	return nil
}

func (e *Exporter) exportProperties(ctx context.Context, p *plan.ExportPlan, parent, jobName string, res *Result) error {
	for _, propName := range p.Properties {
		e.log.Debug("Will be exporting property", zap.String("name", propName), zap.String("grid", parent))

		prop, ok, err := e.project.GridProperty(ctx, parent, propName)
		if err != nil {
			return fmt.Errorf("fetch grid property %s of %s: %w", propName, parent, err)
		}

		if !ok {
			e.warn(res, diagnostic.CodePropertyMissing, fmt.Sprintf("No parameter called %s", propName), parent, propName)
			continue
		}

		path, err := e.sink.ExportGridProperty(ctx, prop, metadata.Request{
			Name:    propName,
			TagName: jobName,
			Content: metadata.ContentProperty,
			Parent:  parent,
		})
		if err != nil {
			return fmt.Errorf("export grid property %s: %w", propName, err)
		}

		e.exported(res, path)
	}

	return nil
}

func (e *Exporter) exportTable(ctx context.Context, p *plan.ExportPlan, parent, jobName string, res *Result) error {
	if p.Table == nil {
		e.warn(res, diagnostic.CodeNoVolumes, "No volumes exported, have you forgot to select table option?", "", "volumes")
		return nil
	}

	spec := tableSpec{
		Columns:   p.Table.Header,
		Variables: p.Variables,
		Selectors: p.Selectors,
	}

	if zones, err := p.Table.Column(volumes.ZoneColumn); err == nil {
		for _, z := range zones {
			spec.Zones, _ = common.AppendUnique(spec.Zones, z)
		}
	}

	path, err := e.sink.ExportTable(ctx, p.Table, metadata.Request{
		Name:    "volumes",
		TagName: jobName,
		Content: metadata.ContentVolumetrics,
		Parent:  parent,
		Spec:    spec,
	})
	if err != nil {
		return fmt.Errorf("export volumes table: %w", err)
	}

	e.exported(res, path)

	return nil
}

// tableSpec documents how the volumes were computed.
type tableSpec struct {
	Columns []string `yaml:"columns"`
	// Zones are the distinct ZONE values in row order.
	Zones     []string         `yaml:"zones,omitempty"`
	Variables plan.Definitions `yaml:"variables"`
	Selectors plan.Selectors   `yaml:"selectors"`
}

func (e *Exporter) exported(res *Result, path string) {
	e.log.Debug("Exported", zap.String("path", path))
	res.Count++
	res.Files = append(res.Files, path)
}

func (e *Exporter) warn(res *Result, code, msg, section, item string) {
	e.log.Warn(msg, zap.String("code", code), zap.String("item", item))
	res.Diagnostics.AddWarning(code, msg, section, item)
}
