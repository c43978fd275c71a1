package dataset

import (
	"sort"
	"time"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
)

// Store holds the joined table. It is write-once: NewStore is the only
// way rows get in, and nothing mutates them afterwards, so concurrent
// readers need no locking.
type Store struct {
	records []model.Record

	// Observed domains, precomputed for filter UIs and validation.
	years   []int
	regions []string
	sports  []string

	unmatched int
	loadedAt  time.Time
}

// NewStore builds a Store from already-converted rows and precomputes
// the observed year/region/sport domains.
func NewStore(records []model.Record) *Store {
	s := &Store{
		records:  records,
		loadedAt: time.Now(),
	}

	yearSet := make(map[int]struct{})
	regionSet := make(map[string]struct{})
	sportSet := make(map[string]struct{})
	for _, r := range records {
		yearSet[r.Year] = struct{}{}
		if r.Region == "" {
			s.unmatched++
		} else {
			regionSet[r.Region] = struct{}{}
		}
		if r.Sport != "" {
			sportSet[r.Sport] = struct{}{}
		}
	}

	s.years = make([]int, 0, len(yearSet))
	for y := range yearSet {
		s.years = append(s.years, y)
	}
	sort.Ints(s.years)

	s.regions = sortedKeys(regionSet)
	s.sports = sortedKeys(sportSet)

	return s
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the row count, invariant after load.
func (s *Store) Len() int {
	return len(s.records)
}

// Row returns the record at index i.
func (s *Store) Row(i int) model.Record {
	return s.records[i]
}

// Years returns the distinct years observed in the table, ascending.
func (s *Store) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Regions returns the distinct resolved regions, sorted. Rows whose NOC
// had no mapping contribute nothing here.
func (s *Store) Regions() []string {
	out := make([]string, len(s.regions))
	copy(out, s.regions)
	return out
}

// Sports returns the distinct sports observed in the table, sorted.
func (s *Store) Sports() []string {
	out := make([]string, len(s.sports))
	copy(out, s.sports)
	return out
}

// UnmatchedRegions returns how many rows carry no resolved region.
func (s *Store) UnmatchedRegions() int {
	return s.unmatched
}

// LoadedAt returns when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
