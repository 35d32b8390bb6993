// ObjectsWriter prints bare object identifiers, one per line
package scan

import (
	"fmt"
	"io"
	"os"
)

// ObjectsWriter prints the objectId of each passing alert as it is
// found, nothing else.
type ObjectsWriter struct {
	out io.Writer
}

// NewObjectsWriter creates an ObjectsWriter writing to os.Stdout.
func NewObjectsWriter() *ObjectsWriter {
	return &ObjectsWriter{out: os.Stdout}
}

// Write outputs the objectId of a single result row.
func (w *ObjectsWriter) Write(row ResultRow) error {
	_, err := fmt.Fprintln(w.out, row.ObjectID)
	return err
}

// WriteBatch outputs the objectIds of multiple result rows.
func (w *ObjectsWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
