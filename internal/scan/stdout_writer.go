// Writer implementation printing scan rows to STDOUT
package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdoutWriter prints passing alerts and the summary as JSON lines.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// Write outputs a single result row.
func (w *StdoutWriter) Write(row ResultRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, string(data))
	return nil
}

// WriteBatch outputs multiple result rows.
func (w *StdoutWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the final counters.
func (w *StdoutWriter) WriteSummary(sum Summary) error {
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, string(data))
	return nil
}
