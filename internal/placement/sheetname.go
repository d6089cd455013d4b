package placement

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Excel refuses sheet titles longer than 31 characters.
const maxSheetNameLen = 31

// floorRe matches "1st Floor", "2 Floor", "23rd floor" and friends.
var floorRe = regexp.MustCompile(`(?i)^(\d+)(?:st|nd|rd|th)?\s+Floor$`)

var titleCaser = cases.Title(language.English)

// SheetName converts a raw floorplan name into a legal sheet title.
// Ordinal floor names collapse to "Floor <n>"; anything else is title-cased
// and truncated to the Excel limit. Two different floorplan names may still
// normalize to the same title — the workbook writer rejects that.
func SheetName(floor string) string {
	if m := floorRe.FindStringSubmatch(strings.TrimSpace(floor)); m != nil {
		return "Floor " + m[1]
	}

	name := titleCaser.String(floor)
	runes := []rune(name)
	if len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}
