package model

import (
	"fmt"
	"strings"
)

// Location is the facility hosting a reading slot.
type Location int

const (
	LocationNone Location = iota
	Torrance
	ManhattanBeach
)

// String returns the facility name, or "" for LocationNone.
func (l Location) String() string {
	switch l {
	case Torrance:
		return "Torrance"
	case ManhattanBeach:
		return "Manhattan Beach"
	default:
		return ""
	}
}

// ParseLocation matches a facility name ignoring case and spacing, so
// "manhattan  beach" and "ManhattanBeach" both resolve.
func ParseLocation(s string) (Location, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	switch key {
	case "torrance":
		return Torrance, true
	case "manhattanbeach":
		return ManhattanBeach, true
	}
	return LocationNone, false
}

// MarshalText encodes the facility name.
func (l Location) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText decodes a facility name; empty text means LocationNone.
func (l *Location) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*l = LocationNone
		return nil
	}
	v, ok := ParseLocation(string(b))
	if !ok {
		return fmt.Errorf("unknown location %q", string(b))
	}
	*l = v
	return nil
}
