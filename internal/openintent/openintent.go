// Package openintent parses OpenIntent JSON exports of access point placements.
package openintent

import (
	"encoding/json"
	"fmt"
	"os"
)

// UnknownFloor is assigned to access points whose export record carries no
// floorplan name.
const UnknownFloor = "Unknown Floor"

// Coordinate is an access point's position on its floorplan. X and Y are
// pointers so a record that carries a coordinate object with missing axes can
// be told apart from one with no coordinates at all.
type Coordinate struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// AccessPoint is a single placement record from the export. Records are
// read-only input; nothing mutates them after parsing.
type AccessPoint struct {
	Model         string      `json:"model"`
	FloorplanName string      `json:"floorplan_name"`
	Coordinate    *Coordinate `json:"coordinate_xyz,omitempty"`
}

// Floor returns the access point's floorplan name, or UnknownFloor when the
// export omitted it.
func (ap AccessPoint) Floor() string {
	if ap.FloorplanName == "" {
		return UnknownFloor
	}
	return ap.FloorplanName
}

// Document is the top-level shape of an OpenIntent export.
type Document struct {
	AccessPoints []AccessPoint `json:"accesspoints"`
}

// FloorGroup holds the access points of one floor, in input order.
type FloorGroup struct {
	Name string
	APs  []AccessPoint
}

// Load reads and parses an OpenIntent JSON export from path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid OpenIntent JSON in %s: %w", path, err)
	}

	return &doc, nil
}

// GroupByFloor partitions the document's access points by floorplan name.
// Groups appear in the order their floor is first seen, and access points
// keep their input order within each group.
func (d *Document) GroupByFloor() []FloorGroup {
	var groups []FloorGroup
	index := make(map[string]int)

	for _, ap := range d.AccessPoints {
		floor := ap.Floor()
		i, seen := index[floor]
		if !seen {
			i = len(groups)
			index[floor] = i
			groups = append(groups, FloorGroup{Name: floor})
		}
		groups[i].APs = append(groups[i].APs, ap)
	}

	return groups
}
