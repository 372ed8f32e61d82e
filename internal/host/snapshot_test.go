package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

func newSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	s, err := CreateSnapshot(t.TempDir())
	require.NoError(t, err)

	return s
}

func TestSnapshotJobs(t *testing.T) {
	ctx := context.Background()
	s := newSnapshot(t)

	jc := &jobconfig.JobConfig{
		Input:  []jobconfig.InputSection{{SelectedZoneNames: []string{"Upper"}}},
		Output: []jobconfig.OutputSection{{UseOil: true, MapOutput: "Clipboard"}},
	}
	args, err := jobconfig.ArgumentsOf(jc)
	require.NoError(t, err)
	require.NoError(t, s.PutJob(gridOwner, "Volumetrics", "vol1", args))

	assert.FileExists(t, filepath.Join(s.Root(), "jobs", "Grid models", "Geogrid", "Grid", "Volumetrics", "vol1.yml"))

	gotArgs, err := s.JobArguments(ctx, gridOwner, "Volumetrics", "vol1")
	require.NoError(t, err)

	got, err := gotArgs.JobConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"Upper"}, got.Input[0].SelectedZoneNames)
	assert.True(t, got.Output[0].UseOil)

	_, err = s.JobArguments(ctx, gridOwner, "Volumetrics", "nope")
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestSnapshotObjects(t *testing.T) {
	ctx := context.Background()
	s := newSnapshot(t)

	require.NoError(t, s.PutTable(&volumes.Table{
		Name:   "geogrid_volumes",
		Header: []string{"Zone", "STOIIP"},
		Rows:   [][]string{{"Upper", "1.5"}},
	}))
	require.NoError(t, s.PutSurface(&Surface{
		Name: "Oil_STOIIP", Folder: "Volumetrics_vol1/Upper", Location: "clipboard",
		NCol: 2, NRow: 1, XInc: 25, YInc: 25, Values: []float64{1, 2},
	}))
	require.NoError(t, s.PutGridProperty(&GridProperty{
		Grid: "Geogrid", Name: "Oil_stoiip", NCol: 1, NRow: 1, NLay: 2, Values: []float64{0.5, 0.7},
	}))

	ro, err := SnapshotProvider{}.Project(ctx, s.Root(), true)
	require.NoError(t, err)
	assert.True(t, ro.ReadOnly())

	tbl, ok, err := ro.VolumetricTable(ctx, "geogrid_volumes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Zone", "STOIIP"}, tbl.Header)

	_, ok, err = ro.VolumetricTable(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	surf, ok, err := ro.Surface(ctx, "Oil_STOIIP", "Volumetrics_vol1/Upper", "clipboard")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, surf.Values)
	assert.Equal(t, "Volumetrics_vol1/Upper", surf.Folder)
	assert.FileExists(t, filepath.Join(s.Root(), "surfaces", "clipboard", "Volumetrics_vol1", "Upper", "Oil_STOIIP.yml"))

	_, ok, err = ro.Surface(ctx, "Oil_STOIIP", "Volumetrics_vol1/Lower", "clipboard")
	require.NoError(t, err)
	assert.False(t, ok)

	gp, ok, err := ro.GridProperty(ctx, "Geogrid", "Oil_stoiip")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, gp.NLay)

	_, ok, err = ro.GridProperty(ctx, "Geogrid", "PORO")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotReadOnlyRefusesWrites(t *testing.T) {
	s := newSnapshot(t)

	ro, err := OpenSnapshot(s.Root(), true)
	require.NoError(t, err)

	require.ErrorIs(t, ro.PutTable(&volumes.Table{Name: "t"}), ErrReadOnly)
	require.ErrorIs(t, ro.PutSurface(&Surface{Name: "s", Folder: "f", Location: "clipboard"}), ErrReadOnly)
	require.ErrorIs(t, ro.PutGridProperty(&GridProperty{Grid: "g", Name: "p"}), ErrReadOnly)
	args, err := jobconfig.ArgumentsOf(&jobconfig.JobConfig{})
	require.NoError(t, err)
	require.ErrorIs(t, ro.PutJob(gridOwner, "Volumetrics", "v", args), ErrReadOnly)
}

func TestSnapshotRejectsEscapingNames(t *testing.T) {
	ctx := context.Background()
	s := newSnapshot(t)

	_, _, err := s.VolumetricTable(ctx, "../../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidName)

	_, _, err = s.GridProperty(ctx, "", "PORO")
	require.ErrorIs(t, err, ErrInvalidName)

	_, _, err = s.Surface(ctx, "s", "f", "")
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestOpenSnapshotErrors(t *testing.T) {
	_, err := OpenSnapshot(filepath.Join(t.TempDir(), "missing"), true)
	require.ErrorIs(t, err, ErrProjectNotFound)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err = OpenSnapshot(file, true)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSnapshotCorruptObject(t *testing.T) {
	ctx := context.Background()
	s := newSnapshot(t)

	path := filepath.Join(s.Root(), "grids", "Geogrid", "PORO.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("values: [not, numbers"), 0o644))

	_, ok, err := s.GridProperty(ctx, "Geogrid", "PORO")
	require.Error(t, err)
	assert.False(t, ok)
}
