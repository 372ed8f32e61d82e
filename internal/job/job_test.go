package job

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rmsexport/internal/diagnostic"
	"rmsexport/internal/export"
	"rmsexport/internal/host"
	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

const volumetricsJob = `
Input:
  - SelectedZoneNames: [Upper, Lower]
    SelectedRegionNames: [West]
    RegionProperty: [Grid models, Geogrid, Regions]
Output:
  - Prefix: ""
    UseGas: false
    UseOil: true
    MapOutput: CLIPBOARD
    Calculations:
      - Type: Stoiip
        CreateProperty: true
        CreateZoneMap: true
Variables:
  - Porosity:
      - Name: Porosity
        InputSource: TABLE
        InputType: GRID_PROPERTY
        DataInput:
          - [Grid models, Geogrid, PORO]
Report:
  - ReportTableName: geogrid_volumes
`

func mustArgs(t *testing.T, src string) *jobconfig.Arguments {
	t.Helper()

	args, err := jobconfig.ParseArguments([]byte(src))
	require.NoError(t, err)

	return args
}

func testHost(t *testing.T, withTable bool) (*host.Memory, *host.MemoryProject) {
	t.Helper()

	m := host.NewMemory()
	m.AddJob(GridOwner("Geogrid"), TypeVolumetrics, "vol1", mustArgs(t, volumetricsJob))

	p := host.NewMemoryProject()
	p.AddSurface(&host.Surface{Name: "Oil_STOIIP", Folder: "Volumetrics_vol1/Upper", Location: "clipboard", NCol: 2, NRow: 2})
	p.AddGridProperty(&host.GridProperty{Grid: "Geogrid", Name: "Oil_stoiip", NCol: 1, NRow: 1, NLay: 1, Values: []float64{1}})
	p.AddGridProperty(&host.GridProperty{Grid: "Geogrid", Name: "PORO", NCol: 1, NRow: 1, NLay: 1, Values: []float64{0.3}})

	if withTable {
		p.AddTable(&volumes.Table{
			Name:   "geogrid_volumes",
			Header: []string{"Proj. real.", "Zone", "Segment", "STOIIP"},
			Rows:   [][]string{{"0", "Upper", "West", "1200.5"}},
		})
	}

	m.AddProject("drogon", p)

	return m, p
}

func TestInplaceVolumesLoad(t *testing.T) {
	m, _ := testHost(t, true)
	ctx := context.Background()

	lv, err := InplaceVolumes{Project: "drogon", GridName: "Geogrid", JobName: "vol1"}.Load(ctx, Host{Jobs: m, Projects: m})
	require.NoError(t, err)

	assert.True(t, lv.Project.ReadOnly())
	assert.Equal(t, []string{"Oil_STOIIP"}, lv.Plan.Maps)
	assert.Equal(t, []string{"Oil_stoiip", "PORO"}, lv.Plan.Properties)
	assert.Equal(t, []string{"Upper", "Lower"}, lv.Plan.MapSubfolders)
	assert.Equal(t, "clipboard", lv.Plan.MapLocation)

	require.NotNil(t, lv.Plan.Table)
	assert.Equal(t, []string{"ZONE", "REGION", "STOIIP_OIL"}, lv.Plan.Table.Header)
	assert.Equal(t, [][]string{{"Upper", "West", "1200.5"}}, lv.Plan.Table.Rows)

	// facies selector is absent
	assert.True(t, lv.Plan.Diagnostics.HasWarning(diagnostic.CodeSelectorMissing))
}

func TestInplaceVolumesLoadWithoutTable(t *testing.T) {
	m, _ := testHost(t, false)
	core, logs := observer.New(zapcore.WarnLevel)

	lv, err := InplaceVolumes{Project: "drogon", GridName: "Geogrid", JobName: "vol1"}.Load(
		context.Background(), Host{Jobs: m, Projects: m, Log: zap.New(core)})
	require.NoError(t, err)

	assert.Nil(t, lv.Plan.Table)
	assert.Equal(t, 1, logs.FilterMessage("No volume table attached").Len())
}

func TestInplaceVolumesLoadErrors(t *testing.T) {
	m, _ := testHost(t, true)
	m.AddJob(GridOwner("Geogrid"), TypeVolumetrics, "nozones", mustArgs(t, `
Input:
  - SelectedRegionNames: [West]
Output:
  - UseOil: true
Variables:
  - {}
`))
	ctx := context.Background()
	h := Host{Jobs: m, Projects: m}

	tests := []struct {
		name    string
		job     InplaceVolumes
		wantErr error
	}{
		{
			name:    "unknown job",
			job:     InplaceVolumes{Project: "drogon", GridName: "Geogrid", JobName: "missing"},
			wantErr: host.ErrJobNotFound,
		},
		{
			name:    "job on another grid",
			job:     InplaceVolumes{Project: "drogon", GridName: "Simgrid", JobName: "vol1"},
			wantErr: host.ErrJobNotFound,
		},
		{
			name:    "unknown project",
			job:     InplaceVolumes{Project: "nope", GridName: "Geogrid", JobName: "vol1"},
			wantErr: host.ErrProjectNotFound,
		},
		{
			name:    "no zones",
			job:     InplaceVolumes{Project: "drogon", GridName: "Geogrid", JobName: "nozones"},
			wantErr: jobconfig.ErrMissingZones,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.job.Load(ctx, h)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadedVolumesExport(t *testing.T) {
	m, _ := testHost(t, true)
	ctx := context.Background()

	lv, err := InplaceVolumes{Project: "drogon", GridName: "Geogrid", JobName: "vol1"}.Load(ctx, Host{Jobs: m, Projects: m})
	require.NoError(t, err)

	dir := t.TempDir()
	res, err := lv.Export(ctx, export.NewFileSink(dir, volumes.FormatCSV, nil))
	require.NoError(t, err)

	// Upper surface, Oil_stoiip and PORO, the table; Lower has no surface.
	assert.Equal(t, 4, res.Count)
	assert.Len(t, res.Files, 4)
	assert.True(t, res.Diagnostics.HasWarning(diagnostic.CodeSurfaceMissing))
	assert.True(t, res.Diagnostics.HasWarning(diagnostic.CodeSelectorMissing))

	for _, rel := range []string{
		"maps/Upper/oil_stoiip--vol1.yml",
		"grids/geogrid--oil_stoiip--vol1.yml",
		"grids/geogrid--poro--vol1.yml",
		"tables/geogrid--volumes--vol1.csv",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(rel)))
	}

	data, err := os.ReadFile(filepath.Join(dir, "tables", "geogrid--volumes--vol1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "ZONE,REGION,STOIIP_OIL\nUpper,West,1200.5\n", string(data))
}

func TestGridAndStructuralModelLoad(t *testing.T) {
	m := host.NewMemory()
	m.AddProject("drogon", host.NewMemoryProject())
	m.AddJob(GridOwner("Geogrid"), TypeCreateGrid, "grid1", mustArgs(t, "Zones: [Upper, Lower]\nIncrement: 25\n"))
	m.AddJob(StructuralOwner("Structure", "Horizons"), TypeHorizonModeling, "hm1", mustArgs(t, "Horizons: [TopA, BaseA]\n"))

	ctx := context.Background()
	h := Host{Jobs: m, Projects: m}

	g, err := Grid{Project: "drogon", GridName: "Geogrid", JobName: "grid1"}.Load(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zones", "Increment"}, g.Params.Sections())

	sm, err := StructuralModel{
		Project:             "drogon",
		StructuralModelName: "Structure",
		HorizonModelName:    "Horizons",
		JobName:             "hm1",
	}.Load(ctx, h)
	require.NoError(t, err)

	var params struct {
		Horizons []string `yaml:"Horizons"`
	}
	require.NoError(t, sm.Params.Decode(&params))
	assert.Equal(t, []string{"TopA", "BaseA"}, params.Horizons)

	_, err = StructuralModel{Project: "drogon", StructuralModelName: "Structure", HorizonModelName: "Other", JobName: "hm1"}.Load(ctx, h)
	require.ErrorIs(t, err, host.ErrJobNotFound)
}
