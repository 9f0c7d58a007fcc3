// Package export renders a schedule grid as JSON, CSV or a formatted XLSX
// workbook.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/kilianp07/readingschedule/core/location"
	"github.com/kilianp07/readingschedule/core/model"
)

// Header returns the column titles: Time followed by the scheduled days.
func Header() []string {
	out := []string{"Time"}
	for _, d := range model.ScheduleDays {
		out = append(out, d.String())
	}
	return out
}

// Document is the display form of a grid, one entry per cell with its
// location tag and background color.
type Document struct {
	Legend  []string      `json:"legend"`
	Columns []string      `json:"columns"`
	Rows    []DocumentRow `json:"rows"`
}

// DocumentRow is one time slot of a Document.
type DocumentRow struct {
	Time  string         `json:"time"`
	Cells []DocumentCell `json:"cells"`
}

// DocumentCell is one day of a DocumentRow.
type DocumentCell struct {
	Day      string `json:"day"`
	Names    string `json:"names"`
	Location string `json:"location,omitempty"`
	Color    string `json:"color,omitempty"`
}

// NewDocument tags every cell of g with its location and color.
func NewDocument(g model.ScheduleGrid, cfg Config) Document {
	cfg.SetDefaults()
	doc := Document{Legend: location.Legend(), Columns: Header(), Rows: make([]DocumentRow, 0, len(g.Rows))}
	for _, r := range g.Rows {
		row := DocumentRow{Time: r.Time.String(), Cells: make([]DocumentCell, 0, len(r.Cells))}
		for _, c := range r.Cells {
			row.Cells = append(row.Cells, DocumentCell{
				Day:      c.Day.String(),
				Names:    c.Text(),
				Location: c.Location.String(),
				Color:    cfg.Color(c.Location),
			})
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}

// WriteJSON writes the tagged schedule to w in JSON format.
func WriteJSON(w io.Writer, g model.ScheduleGrid, cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(g, cfg))
}

// WriteCSV writes the schedule to w with the Time, Monday..Saturday header.
func WriteCSV(w io.Writer, g model.ScheduleGrid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, r := range g.Rows {
		rec := []string{r.Time.String()}
		for _, d := range model.ScheduleDays {
			rec = append(rec, r.Cell(d).Text())
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
