// Package excelize encodes tables as XLSX workbooks.
package excelize

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/cardex"
	"github.com/xuri/excelize/v2"
)

// Ensure Encoder implements cardex.TableEncoder at compile time.
var _ cardex.TableEncoder = (*Encoder)(nil)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// Encoder writes a table to a single-sheet workbook named after the table.
// The header row is bold. Cells holding bare integers are stored as numbers.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes t to w as an XLSX workbook.
func (e *Encoder) Encode(w io.Writer, t *cardex.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(t.Name)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(t.Fields))
	for i, field := range t.Fields {
		header[i] = field
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, rec := range t.Records() {
		values := make([]any, len(rec))
		for j, v := range rec {
			values[j] = cellValue(v)
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func cellValue(v string) any {
	if cardex.IsInteger(v) {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return v
}

// SheetName returns name made safe for use as a worksheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if name == "" {
		return "Sheet1"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
