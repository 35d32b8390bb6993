package scan

// MultiWriter fan-outs result rows and summaries to multiple writers.
type MultiWriter struct {
	resultWriters  []ResultWriter
	summaryWriters []SummaryWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(rws []ResultWriter, sws []SummaryWriter) *MultiWriter {
	return &MultiWriter{resultWriters: rws, summaryWriters: sws}
}

// Write sends a result row to all writers.
func (mw *MultiWriter) Write(row ResultRow) error {
	for _, w := range mw.resultWriters {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple rows to all writers, using batch if supported.
func (mw *MultiWriter) WriteBatch(rows []ResultRow) error {
	for _, w := range mw.resultWriters {
		if bw, ok := w.(batchResultWriter); ok {
			if err := bw.WriteBatch(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.Write(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary sends the summary to all summary writers.
func (mw *MultiWriter) WriteSummary(sum Summary) error {
	for _, w := range mw.summaryWriters {
		if err := w.WriteSummary(sum); err != nil {
			return err
		}
	}
	return nil
}
