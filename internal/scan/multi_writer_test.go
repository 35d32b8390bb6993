package scan

import "testing"

// batchRecorder counts batch calls to verify fan-out prefers WriteBatch.
type batchRecorder struct {
	MockWriter
	batches int
}

func (w *batchRecorder) WriteBatch(rows []ResultRow) error {
	w.batches++
	return w.MockWriter.Write(rows[0])
}

func TestMultiWriter_FanOut(t *testing.T) {
	a := &MockWriter{}
	b := &MockWriter{}
	mw := NewMultiWriter([]ResultWriter{a, b}, []SummaryWriter{a})

	if err := mw.Write(sampleRow("ZTF21fan")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(a.Rows) != 1 || len(b.Rows) != 1 {
		t.Errorf("fan-out rows: a=%d b=%d", len(a.Rows), len(b.Rows))
	}

	if err := mw.WriteSummary(Summary{ScanID: "s"}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if len(a.Summaries) != 1 || len(b.Summaries) != 0 {
		t.Errorf("fan-out summaries: a=%d b=%d", len(a.Summaries), len(b.Summaries))
	}
}

func TestMultiWriter_BatchPreferred(t *testing.T) {
	plain := &MockWriter{}
	batch := &batchRecorder{}
	mw := NewMultiWriter([]ResultWriter{plain, batch}, nil)

	rows := []ResultRow{sampleRow("ZTF21x"), sampleRow("ZTF21y")}
	if err := mw.WriteBatch(rows); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if len(plain.Rows) != 2 {
		t.Errorf("plain writer rows = %d, want 2", len(plain.Rows))
	}
	if batch.batches != 1 {
		t.Errorf("batch writer called %d times, want 1", batch.batches)
	}
}
