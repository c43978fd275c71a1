package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// Generation tuning constants.
const (
	minEntrantsPerFinal = 4
	entrantSpread       = 5 // entrants per final range on top of the minimum
	missingCellChance   = 20
	ageMin              = 16
	ageSpread           = 24
	heightMin           = 150
	heightSpread        = 55
	weightMin           = 45
	weightSpread        = 60
)

// Row is one generated athlete-event line in source column order.
type Row struct {
	ID     int
	Name   string
	Sex    string
	Age    string
	Height string
	Weight string
	Team   string
	NOC    string
	Games  string
	Year   int
	Season string
	City   string
	Sport  string
	Event  string
	Medal  string
}

// athlete is a roster entry reused across editions so that names,
// sexes and committees stay stable for a given ID.
type athlete struct {
	ID     int
	Name   string
	Sex    string
	NOC    string
	Team   string
	Height string
	Weight string
}

// final is one unit of generation work: a single event at a single
// edition. Cells are enumerated up front so workers can be handed
// contiguous ranges.
type final struct {
	Edition editionEntry
	Sport   string
	Event   string
}

// generateRoster builds the synthetic athlete roster.
func generateRoster(cfg *Config, rng *rand.Rand) []athlete {
	roster := make([]athlete, cfg.Athletes)
	for i := range roster {
		first := firstNamePool[rng.Intn(len(firstNamePool))]
		last := lastNamePool[rng.Intn(len(lastNamePool))]
		noc := nocPool[rng.Intn(len(nocPool))]

		sex := "M"
		if rng.Intn(2) == 1 {
			sex = "F"
		}

		height := strconv.Itoa(heightMin + rng.Intn(heightSpread))
		weight := strconv.Itoa(weightMin + rng.Intn(weightSpread))
		// A small share of rows carries no body measurements, like
		// the real source files do.
		if rng.Intn(missingCellChance) == 0 {
			height = "NA"
			weight = "NA"
		}

		team := noc.Region
		if team == "" {
			team = noc.Notes
		}

		roster[i] = athlete{
			ID:     i + 1,
			Name:   first + " " + last,
			Sex:    sex,
			NOC:    noc.NOC,
			Team:   team,
			Height: height,
			Weight: weight,
		}
	}
	return roster
}

// enumerateFinals lists event-edition cells, cycling through the pools
// until the requested row budget is covered.
func enumerateFinals(rows int) []final {
	avgEntrants := minEntrantsPerFinal + entrantSpread/2
	needed := rows/avgEntrants + 1

	finals := make([]final, 0, needed)
	for len(finals) < needed {
		for _, ed := range editionPool {
			for _, sp := range sportPool {
				for _, ev := range sp.Events {
					finals = append(finals, final{Edition: ed, Sport: sp.Sport, Event: ev})
					if len(finals) >= needed {
						return finals
					}
				}
			}
		}
	}
	return finals
}

// generateRows produces the athlete-event rows concurrently. Each final
// gets its own rand source derived from the base seed and the cell
// index, so the output is identical for a given seed no matter how
// many workers run.
func generateRows(ctx context.Context, cfg *Config, roster []athlete, stats *Stats) ([]Row, error) {
	logger.Get().Info(ctx, "generating athlete-event rows",
		logger.Int("rows", cfg.Rows),
		logger.Int("athletes", len(roster)),
		logger.Int("workers", cfg.Workers))

	finals := enumerateFinals(cfg.Rows)

	type cellResult struct {
		index int
		rows  []Row
		err   error
	}

	resultChan := make(chan cellResult, len(finals))

	workerCount := minInt(cfg.Workers, len(finals))
	cellsPerWorker := len(finals) / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * cellsPerWorker
		end := start + cellsPerWorker
		if worker == workerCount-1 {
			end = len(finals)
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- cellResult{index: i, err: ctx.Err()}
					return
				default:
					rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
					resultChan <- cellResult{index: i, rows: generateFinal(finals[i], roster, rng)}
				}
			}
		}(start, end)
	}

	perCell := make([][]Row, len(finals))
	for range finals {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during row generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate final %d: %w", result.index, result.err)
			}
			perCell[result.index] = result.rows
		}
	}

	rows := make([]Row, 0, cfg.Rows)
	for _, cell := range perCell {
		rows = append(rows, cell...)
	}
	if len(rows) > cfg.Rows {
		rows = rows[:cfg.Rows]
	}

	for _, r := range rows {
		if r.Medal != "NA" {
			stats.MedalsAwarded++
		}
	}
	stats.RowsGenerated = len(rows)

	logger.Get().Info(ctx, "generated rows successfully",
		logger.Int("count", len(rows)),
		logger.Int("medals", stats.MedalsAwarded))
	return rows, nil
}

// generateFinal produces the entrant rows of a single event-edition
// cell. Entrants are distinct athletes and the first three take Gold,
// Silver and Bronze, so every generated final awards each medal at
// most once.
func generateFinal(f final, roster []athlete, rng *rand.Rand) []Row {
	entrants := minEntrantsPerFinal + rng.Intn(entrantSpread)
	if entrants > len(roster) {
		entrants = len(roster)
	}

	// Distinct entrant pick: a random start with a stride coprime to
	// nothing in particular, just a small odd step.
	start := rng.Intn(len(roster))
	step := 1 + 2*rng.Intn(7)

	rows := make([]Row, 0, entrants)
	for i := 0; i < entrants; i++ {
		a := roster[(start+i*step)%len(roster)]

		medal := "NA"
		switch i {
		case 0:
			medal = "Gold"
		case 1:
			medal = "Silver"
		case 2:
			medal = "Bronze"
		}

		age := strconv.Itoa(ageMin + rng.Intn(ageSpread))
		if rng.Intn(missingCellChance) == 0 {
			age = "NA"
		}

		rows = append(rows, Row{
			ID:     a.ID,
			Name:   a.Name,
			Sex:    a.Sex,
			Age:    age,
			Height: a.Height,
			Weight: a.Weight,
			Team:   a.Team,
			NOC:    a.NOC,
			Games:  strconv.Itoa(f.Edition.Year) + " Summer",
			Year:   f.Edition.Year,
			Season: "Summer",
			City:   f.Edition.City,
			Sport:  f.Sport,
			Event:  f.Event,
			Medal:  medal,
		})
	}
	return rows
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
