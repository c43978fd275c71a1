// Package types contains common types used across the application
package types

import "github.com/Arun1457/olympics-dashboard/internal/domain/model"

// Domains lists the observed filter domains of the loaded table. The
// dashboard builds its pickers from these instead of hard-coded lists.
type Domains struct {
	Years   []int    `json:"years"`
	Regions []string `json:"regions"`
	Sports  []string `json:"sports"`
	Medals  []string `json:"medals"`
}

// RecordsPage is one page of raw joined rows together with the total
// size of the selected subset.
type RecordsPage struct {
	Total   int            `json:"total"`
	Offset  int            `json:"offset"`
	Limit   int            `json:"limit"`
	Records []model.Record `json:"records"`
}
