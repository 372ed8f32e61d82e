package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rmsexport/internal/diagnostic"
	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

const volumetricsJob = `
Input:
  - SelectedZoneNames: [Valysar, Therys]
    SelectedFaciesNames: [Channel, Crevasse]
    FaciesProperty: [Grid models, Geogrid, FACIES]
Output:
  - Prefix: ""
    UseGas: true
    UseOil: true
    MapOutput: CLIPBOARD
    Calculations:
      - {Type: Stoiip, CreateProperty: true, CreateZoneMap: true}
      - {Type: Bulk, CreateProperty: true, CreateZoneMap: false}
Variables:
  - Porosity:
      - Name: Phi
        InputSource: TABLE
        InputType: GRID
        TableValues: []
        DataInput:
          - [Grid models, Geogrid, PORO]
    Saturation:
      - Name: Sw
        InputSource: REGION_MODEL
        InputType: REGION
        TableValues: [0.2]
        DataInput: []
Report:
  - ReportTableName: geogrid_volumes
`

func parseJob(t *testing.T, data string) *jobconfig.JobConfig {
	t.Helper()

	jc, err := jobconfig.Parse([]byte(data))
	require.NoError(t, err)

	return jc
}

func TestResolverResolve(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	plan, err := NewResolver(parseJob(t, volumetricsJob), zap.New(core)).Resolve()
	require.NoError(t, err, spew.Sdump(plan))

	assert.Equal(t, []string{"Gas_STOIIP", "Oil_STOIIP"}, plan.Maps)
	// Calculated properties first, then the data-linked ones unprefixed.
	assert.Equal(t, []string{"Gas_stoiip", "Oil_stoiip", "Gas_bulk", "Oil_bulk", "PORO"}, plan.Properties)
	assert.Equal(t, []string{"PORO"}, plan.AdditionalProperties)
	assert.Equal(t, "clipboard", plan.MapLocation)
	assert.Equal(t, []string{"Valysar", "Therys"}, plan.MapSubfolders)
	assert.Nil(t, plan.Table)

	assert.Nil(t, plan.Selectors.Region)
	require.NotNil(t, plan.Selectors.Facies)
	assert.Equal(t, "FACIES", plan.Selectors.Facies.Parameter)

	require.Len(t, plan.Diagnostics.Warnings(), 1)
	assert.Equal(t, "Region", plan.Diagnostics.Warnings()[0].Item)

	warned := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("No selectors for Region")
	assert.Equal(t, 1, warned.Len())
}

func TestResolverIsDeterministic(t *testing.T) {
	job := parseJob(t, volumetricsJob)

	first, err := NewResolver(job, nil).Resolve()
	require.NoError(t, err)
	second, err := NewResolver(job, nil).Resolve()
	require.NoError(t, err)

	opts := cmp.Options{cmp.AllowUnexported(Definitions{}, diagnostic.Diagnostics{}), cmpopts.EquateEmpty()}
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Errorf("plans differ (-first +second):\n%s", diff)
	}

	a, err := Marshal(first)
	require.NoError(t, err)
	b, err := Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestResolverStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		job     string
		wantErr error
	}{
		{
			name:    "no input",
			job:     "Output:\n  - MapOutput: x\nVariables:\n  - {}\n",
			wantErr: jobconfig.ErrMissingSection,
		},
		{
			name:    "no zones",
			job:     "Input:\n  - SelectedRegionNames: [A]\nOutput:\n  - MapOutput: x\nVariables:\n  - {}\n",
			wantErr: jobconfig.ErrMissingZones,
		},
		{
			name:    "no variables",
			job:     "Input:\n  - SelectedZoneNames: [A]\nOutput:\n  - MapOutput: x\n",
			wantErr: jobconfig.ErrMissingSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewResolver(parseJob(t, tt.job), nil).Resolve()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, plan)
		})
	}

	_, err := NewResolver(nil, nil).Resolve()
	require.Error(t, err)
}

func TestResolverMalformedDataInputAborts(t *testing.T) {
	job := `
Input:
  - SelectedZoneNames: [A]
Output:
  - MapOutput: x
Variables:
  - g:
      - Name: broken
        DataInput:
          - []
`
	plan, err := NewResolver(parseJob(t, job), nil).Resolve()
	require.Error(t, err)
	assert.Nil(t, plan)
}

func TestPlanMarshalRoundTrip(t *testing.T) {
	plan, err := NewResolver(parseJob(t, volumetricsJob), nil).Resolve()
	require.NoError(t, err)

	plan.AttachTable(&volumes.Table{
		Name:   "geogrid_volumes",
		Header: []string{"ZONE", "STOIIP_OIL"},
		Rows:   [][]string{{"Valysar", "12.5"}},
	})

	data, err := Marshal(plan)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, plan.Output, back.Output)
	assert.Equal(t, plan.Selectors, back.Selectors)
	assert.Equal(t, plan.Variables.Names(), back.Variables.Names())
	assert.Equal(t, plan.Table, back.Table)

	phi, ok := back.Variables.Get("Phi")
	require.True(t, ok)
	assert.Equal(t, Values{Kind: ValuesProperty, Property: "PORO"}, phi.Values)

	sw, ok := back.Variables.Get("Sw")
	require.True(t, ok)
	assert.Equal(t, ValuesHidden, sw.Values.Kind)

	assert.Empty(t, back.Diagnostics.Warnings())
	assert.Equal(t, diagnostic.Diagnostics{}, back.Diagnostics)
}
