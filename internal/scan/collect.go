package scan

// CollectWriter buffers rows in memory for post-scan presentation,
// such as the interactive results browser.
type CollectWriter struct {
	Rows    []ResultRow
	Summary *Summary
}

// Write buffers a single result row.
func (w *CollectWriter) Write(row ResultRow) error {
	w.Rows = append(w.Rows, row)
	return nil
}

// WriteSummary records the final counters.
func (w *CollectWriter) WriteSummary(sum Summary) error {
	w.Summary = &sum
	return nil
}
