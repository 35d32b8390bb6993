// FileWriter exports scan rows and summaries to JSONL files
package scan

import (
	"encoding/json"
	"os"
)

// FileWriter writes passing alerts, and optionally the summary, to
// JSONL files.
type FileWriter struct {
	rowFile *os.File
	sumFile *os.File
	rowEnc  *json.Encoder
	sumEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. summaryPath may be empty to skip
// the summary log.
func NewFileWriter(rowPath, summaryPath string) (*FileWriter, error) {
	rf, err := os.Create(rowPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{rowFile: rf, rowEnc: json.NewEncoder(rf)}
	if summaryPath != "" {
		sf, err := os.Create(summaryPath)
		if err != nil {
			rf.Close()
			return nil, err
		}
		fw.sumFile = sf
		fw.sumEnc = json.NewEncoder(sf)
	}
	return fw, nil
}

// Write logs a single result row.
func (f *FileWriter) Write(row ResultRow) error {
	return f.rowEnc.Encode(row)
}

// WriteBatch logs multiple result rows.
func (f *FileWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary logs the final counters, if enabled.
func (f *FileWriter) WriteSummary(sum Summary) error {
	if f.sumEnc == nil {
		return nil
	}
	return f.sumEnc.Encode(sum)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.rowFile != nil {
		if e := f.rowFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.sumFile != nil {
		if e := f.sumFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
