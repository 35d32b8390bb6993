// Row types emitted by the scanner
package scan

import (
	"time"

	"alertsift/internal/alert"
	"alertsift/internal/filter"
)

// ResultRow represents one passing alert in scan output.
type ResultRow struct {
	ScanID      string                   `json:"scan_id"`
	ObjectID    string                   `json:"objectId"`
	Candid      int64                    `json:"candid"`
	File        string                   `json:"file"`
	Filter      string                   `json:"filter"`
	RB          *float64                 `json:"rb"`
	MagPSF      *float64                 `json:"magpsf"`
	FWHM        *float64                 `json:"fwhm"`
	IsDiffPos   *string                  `json:"isdiffpos"`
	HistoryDays *float64                 `json:"history_days"`
	Criteria    []filter.CriterionResult `json:"criteria,omitempty"`
	Timestamp   time.Time                `json:"ts"`
}

// Summary captures the counters owned by one scan run.
type Summary struct {
	ScanID    string         `json:"scan_id"`
	Filter    string         `json:"filter"`
	Directory string         `json:"directory"`
	Pattern   string         `json:"pattern"`
	Files     int            `json:"files"`
	Decoded   int            `json:"decoded"`
	Passed    int            `json:"passed"`
	Rejected  int            `json:"rejected"`
	Errors    int            `json:"errors"`
	Criteria  map[string]int `json:"criteria_passed"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration_ns"`
}

// newResultRow projects the fields shown in scan output out of a
// passing alert, keeping the per-cut breakdown for the detail views.
func newResultRow(scanID, filterName string, a *alert.Alert, criteria []filter.CriterionResult, ts time.Time) ResultRow {
	row := ResultRow{
		ScanID:    scanID,
		ObjectID:  a.ObjectID,
		Candid:    a.Candid,
		File:      a.Path,
		Filter:    filterName,
		Criteria:  criteria,
		Timestamp: ts,
	}
	if c := a.Candidate; c != nil {
		row.RB = c.RB
		row.MagPSF = c.MagPSF
		row.FWHM = c.FWHM
		row.IsDiffPos = c.IsDiffPos
		row.HistoryDays = c.HistoryDays()
	}
	return row
}
