package query

import (
	"sort"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
)

// GroupKey names a grouping dimension of the joined table.
type GroupKey int

// Grouping dimensions.
const (
	// KeyAthlete groups by athlete name.
	KeyAthlete GroupKey = iota
	// KeySport groups by sport.
	KeySport
	// KeySex groups by the sex column.
	KeySex
	// KeyRegion groups by resolved region; rows without one are skipped.
	KeyRegion
	// KeyTotal puts every row in a single "Count" group.
	KeyTotal
)

func keyValue(r model.Record, key GroupKey) (string, bool) {
	switch key {
	case KeyAthlete:
		return r.Name, true
	case KeySport:
		return r.Sport, true
	case KeySex:
		return r.Sex, true
	case KeyRegion:
		return r.Region, r.Region != ""
	case KeyTotal:
		return "Count", true
	default:
		return "", false
	}
}

// TopEntry is one line of a top-N ranking.
type TopEntry struct {
	Key    string `json:"key"`
	Medals int    `json:"medals"`
}

// TopEntities ranks the medal-bearing rows of the subset by a group key
// and returns the first n groups by medal count, descending. Ties keep
// first-appearance order (stable sort), so re-sorting an already sorted
// result changes nothing. n <= 0 means no truncation.
func TopEntities(s Subset, key GroupKey, n int) []TopEntry {
	medals := MedalRows(s)

	index := make(map[string]int)
	entries := make([]TopEntry, 0)
	for i := 0; i < medals.Len(); i++ {
		v, ok := keyValue(medals.Row(i), key)
		if !ok {
			continue
		}
		pos, seen := index[v]
		if !seen {
			pos = len(entries)
			index[v] = pos
			entries = append(entries, TopEntry{Key: v})
		}
		entries[pos].Medals++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Medals > entries[j].Medals
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// yearLabel formats a year as a grid row key.
func yearLabel(y int) string {
	return strconv.Itoa(y)
}
