// ColorStdoutWriter prints human-friendly, colorized scan output to STDOUT.
package scan

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"
)

const (
	colorReset  = "\x1b[0m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorGray   = "\x1b[90m"
)

// ColorStdoutWriter prints result rows using ANSI colors.
type ColorStdoutWriter struct {
	out io.Writer
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter() *ColorStdoutWriter {
	return &ColorStdoutWriter{out: os.Stdout}
}

// Write prints one passing alert as a colorized line.
func (w *ColorStdoutWriter) Write(row ResultRow) error {
	fmt.Fprintf(w.out, "%sPASS%s  %s%-14s%s rb=%s fwhm=%s magpsf=%s %s%s%s\n",
		colorGreen, colorReset,
		colorCyan, row.ObjectID, colorReset,
		floatOrDash(row.RB), floatOrDash(row.FWHM), floatOrDash(row.MagPSF),
		colorGray, row.File, colorReset)
	return nil
}

// WriteSummary prints the final counters as an aligned table.
func (w *ColorStdoutWriter) WriteSummary(sum Summary) error {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\n%sscan %s (%s)%s\n", colorYellow, sum.ScanID, sum.Filter, colorReset)
	fmt.Fprintf(tw, "files\t%d\n", sum.Files)
	fmt.Fprintf(tw, "decoded\t%d\n", sum.Decoded)
	fmt.Fprintf(tw, "passed\t%s%d%s\n", colorGreen, sum.Passed, colorReset)
	fmt.Fprintf(tw, "rejected\t%d\n", sum.Rejected)
	fmt.Fprintf(tw, "errors\t%d\n", sum.Errors)
	for _, name := range sortedCriteria(sum.Criteria) {
		fmt.Fprintf(tw, "%s  %s\t%d\n", colorGray, name, sum.Criteria[name])
	}
	fmt.Fprintf(tw, "%sduration\t%s%s\n", colorGray, sum.Duration.Round(time.Millisecond), colorReset)
	return tw.Flush()
}

func sortedCriteria(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func floatOrDash(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *p)
}
