// Package model contains domain models passed between layers.
package model

import "strconv"

// Medal is the outcome of a single athlete-event row. The zero value
// means the row is a participation row, not a medal row.
type Medal string

// Medal values as they appear in the source data.
const (
	MedalNone   Medal = ""
	MedalGold   Medal = "Gold"
	MedalSilver Medal = "Silver"
	MedalBronze Medal = "Bronze"
)

// ParseMedal normalizes a raw medal cell. The source uses "NA" for
// rows without a medal; empty cells mean the same.
func ParseMedal(raw string) Medal {
	switch raw {
	case "Gold":
		return MedalGold
	case "Silver":
		return MedalSilver
	case "Bronze":
		return MedalBronze
	default:
		return MedalNone
	}
}

// Present reports whether the row carries a medal. Medal presence is
// the sole criterion separating participation rows from medal rows.
func (m Medal) Present() bool {
	return m == MedalGold || m == MedalSilver || m == MedalBronze
}

// String returns the source spelling, "NA" for no medal.
func (m Medal) String() string {
	if !m.Present() {
		return "NA"
	}
	return string(m)
}

// Record is one row of the joined table: an athlete's entry in a single
// event at a single Games, enriched with the region resolved from the
// NOC lookup. Region is empty when the committee code had no mapping;
// such rows stay in the table but never appear in region-keyed views.
type Record struct {
	ID     int     `json:"id"`             // athlete identity, stable across Games
	Name   string  `json:"name"`           // athlete name
	Sex    string  `json:"sex"`            // "M" or "F"
	Age    float64 `json:"age"`            // 0 when absent in the source
	Height float64 `json:"height"`         // cm, 0 when absent
	Weight float64 `json:"weight"`         // kg, 0 when absent
	Team   string  `json:"team"`           // delegation team name as submitted
	NOC    string  `json:"noc"`            // national olympic committee code
	Games  string  `json:"games"`          // e.g. "2016 Summer"
	Year   int     `json:"year"`
	Season string  `json:"season"`
	City   string  `json:"city"`
	Sport  string  `json:"sport"`
	Event  string  `json:"event"`
	Medal  Medal   `json:"medal"`
	Region string  `json:"region"`         // resolved country/region; empty for unmatched NOC
	Note   string  `json:"note,omitempty"` // optional note from the lookup table
}

// RegionMapping is one row of the NOC lookup table.
type RegionMapping struct {
	NOC    string
	Region string
	Note   string
}

// ExportColumns is the column order for delimited export. It mirrors
// the joined source order: athlete columns first, lookup columns last.
var ExportColumns = []string{
	"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC",
	"Games", "Year", "Season", "City", "Sport", "Event", "Medal",
	"region", "notes",
}

// ExportRow renders the record as strings in ExportColumns order.
// Optional numeric fields serialize as "NA" when absent, matching the
// source files so a round-trip reproduces the original cells.
func (r Record) ExportRow() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Sex,
		formatOptionalFloat(r.Age),
		formatOptionalFloat(r.Height),
		formatOptionalFloat(r.Weight),
		r.Team,
		r.NOC,
		r.Games,
		strconv.Itoa(r.Year),
		r.Season,
		r.City,
		r.Sport,
		r.Event,
		r.Medal.String(),
		r.Region,
		r.Note,
	}
}

func formatOptionalFloat(v float64) string {
	if v == 0 {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
