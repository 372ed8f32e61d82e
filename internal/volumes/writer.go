package volumes

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Format is an output format for tables.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported table format %q", s)
	}
}

// sheetName is the single sheet XLSX tables are written to.
const sheetName = "volumes"

// WriteCSV writes the header and rows to w.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}

	return nil
}

// ReadCSV reads a table whose first record is the header.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv table %q: %w", name, err)
	}

	t := &Table{Name: name, Header: []string{}, Rows: [][]string{}}
	if len(records) == 0 {
		return t, nil
	}

	t.Header = records[0]
	t.Rows = records[1:]

	return t, nil
}

// WriteXLSX writes the table to a workbook at path. Cells that parse as
// numbers are stored as numbers.
func WriteXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := toRow(t.Header, false)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := toRow(row, true)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}

	return nil
}

func toRow(cells []string, numeric bool) []any {
	out := make([]any, len(cells))

	for i, c := range cells {
		if numeric {
			if v, err := strconv.ParseFloat(c, 64); err == nil {
				out[i] = v
				continue
			}
		}

		out[i] = c
	}

	return out
}
