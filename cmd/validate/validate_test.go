package validate

import (
	"testing"

	"github.com/klytics/apsheet/internal/openintent"
)

func coord(x, y float64) *openintent.Coordinate {
	return &openintent.Coordinate{X: &x, Y: &y}
}

func TestBuildReportCounts(t *testing.T) {
	doc := &openintent.Document{AccessPoints: []openintent.AccessPoint{
		{Model: "c9130", FloorplanName: "1st Floor", Coordinate: coord(1, 2)},
		{Model: "", FloorplanName: "1st Floor"},
		{Model: "c9120", FloorplanName: "2nd Floor"},
	}}

	rep := buildReport("export.json", doc)

	if rep.AccessPoints != 3 {
		t.Errorf("accessPoints = %d", rep.AccessPoints)
	}
	if rep.MissingModel != 1 {
		t.Errorf("missingModel = %d", rep.MissingModel)
	}
	if rep.MissingCoords != 2 {
		t.Errorf("missingCoordinates = %d", rep.MissingCoords)
	}
	if rep.MalformedCoords != 0 {
		t.Errorf("malformedCoordinates = %d", rep.MalformedCoords)
	}
	if len(rep.Floors) != 2 || rep.Floors[0].Sheet != "Floor 1" || rep.Floors[1].Sheet != "Floor 2" {
		t.Errorf("floors = %+v", rep.Floors)
	}
	if rep.DuplicateSheet != "" {
		t.Errorf("unexpected duplicate: %s", rep.DuplicateSheet)
	}
}

func TestBuildReportMalformedCoordinates(t *testing.T) {
	// A coordinate object without numeric x/y is exactly the shape the row
	// builder refuses, so the dry run must call it out.
	x := 1.0
	doc := &openintent.Document{AccessPoints: []openintent.AccessPoint{
		{Model: "c9130", FloorplanName: "1st Floor", Coordinate: &openintent.Coordinate{X: &x}},
		{Model: "c9120", FloorplanName: "1st Floor", Coordinate: &openintent.Coordinate{}},
		{Model: "c9110", FloorplanName: "1st Floor", Coordinate: coord(3, 4)},
	}}

	rep := buildReport("export.json", doc)

	if rep.MalformedCoords != 2 {
		t.Errorf("malformedCoordinates = %d, want 2", rep.MalformedCoords)
	}
	if rep.MissingCoords != 0 {
		t.Errorf("missingCoordinates = %d, want 0", rep.MissingCoords)
	}
}

func TestBuildReportDuplicateSheet(t *testing.T) {
	doc := &openintent.Document{AccessPoints: []openintent.AccessPoint{
		{Model: "a", FloorplanName: "1st Floor"},
		{Model: "b", FloorplanName: "1 Floor"},
	}}

	rep := buildReport("export.json", doc)

	if rep.DuplicateSheet == "" {
		t.Fatal("expected duplicate sheet warning")
	}
}
