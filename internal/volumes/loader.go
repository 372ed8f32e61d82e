package volumes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rmsexport/internal/jobconfig"
)

// TableSource looks up volumetric tables by name. A missing table is
// reported with ok == false, not an error.
type TableSource interface {
	VolumetricTable(ctx context.Context, name string) (table *Table, ok bool, err error)
}

// Load returns the volumetrics table named by the report section, with
// standard column names and without the realization column.
// A missing report section or table gives (nil, false, nil).
func Load(ctx context.Context, src TableSource, report *jobconfig.ReportSection, log *zap.Logger) (*Table, bool, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if report == nil || report.ReportTableName == "" {
		log.Warn("No volume table attached")
		return nil, false, nil
	}

	log.Debug("Getting volumes", zap.String("table", report.ReportTableName))

	raw, ok, err := src.VolumetricTable(ctx, report.ReportTableName)
	if err != nil {
		return nil, false, fmt.Errorf("read volumetric table %q: %w", report.ReportTableName, err)
	}

	if !ok {
		log.Warn("No volume table attached", zap.String("table", report.ReportTableName))
		return nil, false, nil
	}

	vol := raw.Clone()
	if vol.Name == "" {
		vol.Name = report.ReportTableName
	}

	log.Debug("Volumes before renaming", zap.Strings("columns", vol.Header))
	vol.RenameColumns(StandardName)
	log.Debug("Volumes after renaming", zap.Strings("columns", vol.Header))

	vol.DropColumn(RealColumn)

	return vol, true, nil
}
