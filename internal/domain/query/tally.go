package query

import (
	"sort"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
)

// TallyRow is one country's line in the medal tally.
type TallyRow struct {
	Region string `json:"region"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// MedalTally groups the medal-bearing rows of the subset by region and
// counts each medal type. The result is sorted descending by total;
// ties keep the order in which regions first appear in the input
// (stable sort). Truncating to a top-N is the caller's presentation
// concern, not part of this contract. Rows without a resolved region
// are excluded.
func MedalTally(s Subset) []TallyRow {
	medals := MedalRows(s)

	index := make(map[string]int)
	rows := make([]TallyRow, 0)
	for i := 0; i < medals.Len(); i++ {
		r := medals.Row(i)
		if r.Region == "" {
			continue
		}
		pos, ok := index[r.Region]
		if !ok {
			pos = len(rows)
			index[r.Region] = pos
			rows = append(rows, TallyRow{Region: r.Region})
		}
		switch r.Medal {
		case model.MedalGold:
			rows[pos].Gold++
		case model.MedalSilver:
			rows[pos].Silver++
		case model.MedalBronze:
			rows[pos].Bronze++
		}
	}

	for i := range rows {
		rows[i].Total = rows[i].Gold + rows[i].Silver + rows[i].Bronze
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}
