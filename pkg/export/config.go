package export

import (
	"fmt"
	"regexp"

	"github.com/kilianp07/readingschedule/core/model"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config defines the spreadsheet layout.
type Config struct {
	SheetName       string  `json:"sheet_name"`
	FileName        string  `json:"file_name"`
	TimeColumnWidth float64 `json:"time_column_width"`
	DayColumnWidth  float64 `json:"day_column_width"`
	// NoShading leaves day cells without a location background.
	NoShading           bool   `json:"no_shading"`
	TorranceColor       string `json:"torrance_color"`
	ManhattanBeachColor string `json:"manhattan_beach_color"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.SheetName == "" {
		c.SheetName = "Schedule"
	}
	if c.FileName == "" {
		c.FileName = "bible-reading-schedule.xlsx"
	}
	if c.TimeColumnWidth == 0 {
		c.TimeColumnWidth = 15
	}
	if c.DayColumnWidth == 0 {
		c.DayColumnWidth = 30
	}
	if c.TorranceColor == "" {
		c.TorranceColor = "#E6F3FF"
	}
	if c.ManhattanBeachColor == "" {
		c.ManhattanBeachColor = "#E6FFE6"
	}
}

// Validate checks the layout settings.
func (c Config) Validate() error {
	if c.TimeColumnWidth < 0 || c.DayColumnWidth < 0 || c.TimeColumnWidth > 255 || c.DayColumnWidth > 255 {
		return fmt.Errorf("column widths must be within 0-255")
	}
	for _, col := range []string{c.TorranceColor, c.ManhattanBeachColor} {
		if col != "" && !hexColor.MatchString(col) {
			return fmt.Errorf("invalid color %q, expected #RRGGBB", col)
		}
	}
	if len(c.SheetName) > 31 {
		return fmt.Errorf("sheet_name longer than 31 characters")
	}
	return nil
}

// Color returns the background of a location, or "" when it has none.
func (c Config) Color(l model.Location) string {
	switch l {
	case model.Torrance:
		return c.TorranceColor
	case model.ManhattanBeach:
		return c.ManhattanBeachColor
	}
	return ""
}
