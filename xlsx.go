package docproc

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

// WriteTablesXLSX exports tables to a workbook at path, one sheet per table
// named after its position and page. The header row is bold on the report
// navy. An empty input produces a single sheet stating that no tables were
// found.
func (e *Engine) WriteTablesXLSX(ts []Table, path string) error {
	const op = "write_tables_xlsx"

	f := excelize.NewFile()
	defer f.Close()

	if err := fillWorkbook(f, ts); err != nil {
		return newError(op, path, KindWrite, err)
	}

	err := fsutil.WriteFile(path, func(w io.Writer) error {
		return f.Write(w)
	})
	if err != nil {
		return newError(op, path, KindWrite, err)
	}
	e.logOp(op, path, logrus.Fields{"tables": len(ts)})
	return nil
}

func fillWorkbook(f *excelize.File, ts []Table) error {
	const first = "Sheet1"
	if len(ts) == 0 {
		return f.SetCellValue(first, "A1", "No tables found")
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1A237E"}},
	})
	if err != nil {
		return err
	}

	for i, t := range ts {
		sheet := fmt.Sprintf("Table %d (p%d)", i+1, t.Page)
		if i == 0 {
			if err := f.SetSheetName(first, sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := setRow(f, sheet, 1, t.Headers); err != nil {
			return err
		}
		if len(t.Headers) > 0 {
			end, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, "A1", end, header); err != nil {
				return err
			}
		}
		for r, row := range t.Rows {
			if err := setRow(f, sheet, r+2, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}
