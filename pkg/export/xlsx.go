package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/readingschedule/core/model"
)

// ContentTypeXLSX is the MIME type of the workbook written by WriteXLSX.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes a one sheet workbook: a bold header row, the Time column
// at TimeColumnWidth, the six day columns at DayColumnWidth and, unless
// NoShading is set, day cells filled with their location color.
func WriteXLSX(w io.Writer, g model.ScheduleGrid, cfg Config) error {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := cfg.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", cfg.TimeColumnWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "G", cfg.DayColumnWidth); err != nil {
		return err
	}

	header := make([]any, 0, 7)
	for _, h := range Header() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", bold); err != nil {
		return err
	}

	fills := map[model.Location]int{}
	if !cfg.NoShading {
		for _, loc := range []model.Location{model.Torrance, model.ManhattanBeach} {
			id, err := f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cfg.Color(loc)}},
			})
			if err != nil {
				return fmt.Errorf("style %s: %w", loc, err)
			}
			fills[loc] = id
		}
	}

	for i, r := range g.Rows {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, r.Time.String()); err != nil {
			return err
		}
		for j, d := range model.ScheduleDays {
			c := r.Cell(d)
			cell, err := excelize.CoordinatesToCellName(j+2, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, c.Text()); err != nil {
				return err
			}
			if style, ok := fills[c.Location]; ok {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return err
				}
			}
		}
	}
	return f.Write(w)
}
