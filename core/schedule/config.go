package schedule

import (
	"fmt"

	"github.com/kilianp07/readingschedule/core/normalize"
)

// Universe strategies select the rows of the produced grid.
const (
	// UniverseExplicit uses the distinct times found in the dataset.
	UniverseExplicit = "explicit"
	// UniverseGrid uses every half-hour slot of the day.
	UniverseGrid = "grid"
)

// LocationPolicy decides whether a declared location is cross-checked.
type LocationPolicy string

const (
	// PolicyDeclared drops a registrant from a cell when the location of its
	// Selection disagrees with the rule table. Rows without a Selection are
	// placed unconditionally.
	PolicyDeclared LocationPolicy = "declared"
	// PolicyIgnore never cross-checks locations.
	PolicyIgnore LocationPolicy = "ignore"
)

// Config defines schedule resolution settings.
type Config struct {
	// Year anchors month/day headers that carry no year.
	Year     int    `json:"year"`
	Universe string `json:"universe"`
	// Variant forces a normalizer ("bare", "dated", "grid"); empty means
	// detect from the headers.
	Variant        string         `json:"variant"`
	LocationPolicy LocationPolicy `json:"location_policy"`
	SlotMinutes    int            `json:"slot_minutes"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Year == 0 {
		c.Year = normalize.DefaultYear
	}
	if c.Universe == "" {
		c.Universe = UniverseExplicit
	}
	if c.LocationPolicy == "" {
		c.LocationPolicy = PolicyDeclared
	}
	if c.SlotMinutes == 0 {
		c.SlotMinutes = normalize.DefaultStepMinutes
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.Year < 1 || c.Year > 9999 {
		return fmt.Errorf("year %d out of range", c.Year)
	}
	if c.Universe != UniverseExplicit && c.Universe != UniverseGrid {
		return fmt.Errorf("unknown universe %s", c.Universe)
	}
	if c.LocationPolicy != PolicyDeclared && c.LocationPolicy != PolicyIgnore {
		return fmt.Errorf("unknown location_policy %s", c.LocationPolicy)
	}
	if c.SlotMinutes <= 0 || (24*60)%c.SlotMinutes != 0 {
		return fmt.Errorf("slot_minutes %d does not divide a day", c.SlotMinutes)
	}
	if c.Variant != "" {
		known := false
		for _, v := range normalize.Variants() {
			if v == c.Variant {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown variant %s", c.Variant)
		}
	}
	return nil
}
