// Package placement turns OpenIntent access point records into the rows and
// sheets of an AP placement workbook.
package placement

import (
	"fmt"
	"strings"

	"github.com/klytics/apsheet/internal/openintent"
)

// Header is the fixed 14-column header written to every floor sheet. The
// column set follows the COOR installation-survey template.
var Header = []string{
	"Placement Number",
	"AP Model",
	"Antenna Type",
	"Antenna Vendor",
	"Antenna Model",
	"Mount Type",
	"Mounting Bracket",
	"Mounting Adapter",
	"AP in Enclosure?",
	"Enclosure Model",
	"Antenna in Enclosure?",
	"Direction *",
	"Downtilt *",
	"Notes",
}

// Defaults are the installation values filled into every row. Surveys refine
// these by hand after generation; the config file can override them.
type Defaults struct {
	AntennaType        string `mapstructure:"antenna_type" yaml:"antenna_type"`
	AntennaVendor      string `mapstructure:"antenna_vendor" yaml:"antenna_vendor"`
	AntennaModel       string `mapstructure:"antenna_model" yaml:"antenna_model"`
	MountType          string `mapstructure:"mount_type" yaml:"mount_type"`
	MountingBracket    string `mapstructure:"mounting_bracket" yaml:"mounting_bracket"`
	MountingAdapter    string `mapstructure:"mounting_adapter" yaml:"mounting_adapter"`
	InEnclosure        string `mapstructure:"in_enclosure" yaml:"in_enclosure"`
	EnclosureModel     string `mapstructure:"enclosure_model" yaml:"enclosure_model"`
	AntennaInEnclosure string `mapstructure:"antenna_in_enclosure" yaml:"antenna_in_enclosure"`
	Direction          string `mapstructure:"direction" yaml:"direction"`
	Downtilt           string `mapstructure:"downtilt" yaml:"downtilt"`
}

// StandardDefaults returns the shipped defaults: an internal-omni AP on a
// hard ceiling, no enclosure, bracket and adapter left for the surveyor.
func StandardDefaults() Defaults {
	return Defaults{
		AntennaType:        "Internal Omni",
		AntennaVendor:      "N/A",
		AntennaModel:       "N/A",
		MountType:          "Hard Ceiling",
		MountingBracket:    "<insert mounting bracket model>",
		MountingAdapter:    "<insert mounting adapter model>",
		InEnclosure:        "No",
		EnclosureModel:     "N/A",
		AntennaInEnclosure: "N/A",
		Direction:          "N/A",
		Downtilt:           "N/A",
	}
}

// Number formats the global placement counter value n as "AP-001" style.
func Number(n int) string {
	return fmt.Sprintf("AP-%03d", n)
}

// NormalizeModel uppercases a raw model string. Hyphen-free Cisco-style
// names get the series hyphen restored after the leading C, so "c9130"
// becomes "C-9130" while "ap-105" stays a plain uppercase "AP-105".
func NormalizeModel(raw string) string {
	upper := strings.ToUpper(raw)
	if strings.HasPrefix(upper, "C") && !strings.Contains(raw, "-") {
		return "C-" + upper[1:]
	}
	return upper
}

// BuildRow produces the 14-cell workbook row for ap, using n as its global
// placement number. It is a pure function of its inputs; the caller threads
// the counter. An AP with a coordinate object missing its x or y axis is a
// malformed record and fails the whole run.
func BuildRow(ap openintent.AccessPoint, n int, d Defaults) ([]string, error) {
	notes, err := coordinateNote(ap.Coordinate)
	if err != nil {
		return nil, fmt.Errorf("access point %s: %w", Number(n), err)
	}

	return []string{
		Number(n),
		NormalizeModel(ap.Model),
		d.AntennaType,
		d.AntennaVendor,
		d.AntennaModel,
		d.MountType,
		d.MountingBracket,
		d.MountingAdapter,
		d.InEnclosure,
		d.EnclosureModel,
		d.AntennaInEnclosure,
		d.Direction,
		d.Downtilt,
		notes,
	}, nil
}

func coordinateNote(c *openintent.Coordinate) (string, error) {
	if c == nil {
		return "", nil
	}
	if c.X == nil || c.Y == nil {
		return "", fmt.Errorf("coordinate_xyz present but missing numeric x/y")
	}
	return fmt.Sprintf("x=%.1f, y=%.1f", *c.X, *c.Y), nil
}
