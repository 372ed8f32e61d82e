package volumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableColumnAndDrop(t *testing.T) {
	tbl := &Table{
		Header: []string{"REAL", "ZONE", "BULK_TOTAL"},
		Rows:   [][]string{{"0", "A", "1"}, {"0", "B"}},
	}

	zones, err := tbl.Column("ZONE")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, zones)

	bulk, err := tbl.Column("BULK_TOTAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", ""}, bulk)

	_, err = tbl.Column("NOPE")
	require.Error(t, err)

	assert.True(t, tbl.DropColumn("REAL"))
	assert.False(t, tbl.DropColumn("REAL"))
	assert.Equal(t, []string{"ZONE", "BULK_TOTAL"}, tbl.Header)
	assert.Equal(t, [][]string{{"A", "1"}, {"B"}}, tbl.Rows)
}

func TestTableClone(t *testing.T) {
	var nilTable *Table
	assert.Nil(t, nilTable.Clone())

	orig := &Table{Name: "t", Header: []string{"A"}, Rows: [][]string{{"1"}}}
	cp := orig.Clone()
	cp.Header[0] = "B"
	cp.Rows[0][0] = "2"

	assert.Equal(t, "A", orig.Header[0])
	assert.Equal(t, "1", orig.Rows[0][0])
}
