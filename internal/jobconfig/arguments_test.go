package jobconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	args, err := ParseArguments([]byte(`
Output: [{}]
Horizons:
  - Name: TopVolantis
Input: [{SelectedZoneNames: [A]}]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Output", "Horizons", "Input"}, args.Sections())

	var raw struct {
		Horizons []struct {
			Name string `yaml:"Name"`
		} `yaml:"Horizons"`
	}
	require.NoError(t, args.Decode(&raw))
	require.Len(t, raw.Horizons, 1)
	assert.Equal(t, "TopVolantis", raw.Horizons[0].Name)

	jc, err := args.JobConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, jc.Input[0].SelectedZoneNames)
}

func TestParseArgumentsRejectsNonMapping(t *testing.T) {
	_, err := ParseArguments([]byte("[1, 2]"))
	require.Error(t, err)

	_, err = ParseArguments([]byte("Input: [unterminated"))
	require.Error(t, err)

	args, err := ParseArguments([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, args.Sections())
}

func TestArgumentsOfKeepsVariableOrder(t *testing.T) {
	jc, err := LoadFile(filepath.Join("testdata", "volumetrics.yml"))
	require.NoError(t, err)

	args, err := ArgumentsOf(jc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Input", "Output", "Variables", "Report"}, args.Sections())

	data, err := args.Marshal()
	require.NoError(t, err)

	again, err := ParseArguments(data)
	require.NoError(t, err)

	back, err := again.JobConfig()
	require.NoError(t, err)

	groups, err := back.FirstVariables()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Porosity", groups[0].Name)
	assert.Equal(t, "FormationFactor", groups[2].Name)

	_, err = ArgumentsOf([]string{"not", "a", "mapping"})
	require.Error(t, err)
}

func TestLoadArguments(t *testing.T) {
	args, err := LoadArguments(filepath.Join("testdata", "volumetrics.yml"))
	require.NoError(t, err)
	assert.Contains(t, args.Sections(), "Variables")

	_, err = LoadArguments(filepath.Join("testdata", "missing.yml"))
	require.Error(t, err)
}
