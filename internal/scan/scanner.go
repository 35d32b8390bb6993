// Scanner walking a directory of alert files through a filter
package scan

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"alertsift/internal/alert"
	"alertsift/internal/filter"
	"alertsift/internal/logging"
)

// ResultWriter receives each passing alert.
type ResultWriter interface {
	Write(ResultRow) error
}

// SummaryWriter receives the final counters of a run.
type SummaryWriter interface {
	WriteSummary(Summary) error
}

// Optional: result writers may support batch mode.
type batchResultWriter interface {
	WriteBatch([]ResultRow) error
}

// Options tunes a Scanner.
type Options struct {
	// FailFast aborts the run on the first unreadable file instead of
	// skipping it.
	FailFast bool
	// Now stubs the clock in tests; nil means time.Now.
	Now func() time.Time
}

// Scanner reads alert files one at a time, evaluates the filter, and
// hands passing alerts to the writer. It owns all counters; nothing is
// shared across runs.
type Scanner struct {
	filter  filter.Filter
	writer  ResultWriter
	summary SummaryWriter
	opts    Options
}

// New creates a Scanner. summary may be nil when no summary output is
// wanted.
func New(f filter.Filter, w ResultWriter, sw SummaryWriter, opts Options) *Scanner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scanner{filter: f, writer: w, summary: sw, opts: opts}
}

// Run scans every file matching dir/pattern in sorted order. Unreadable
// or candidate-less files are logged and counted as errors unless
// FailFast is set. The returned Summary is valid even when Run aborts
// early.
func (s *Scanner) Run(ctx context.Context, dir, pattern string) (Summary, error) {
	log := logging.FromContext(ctx)
	sum := Summary{
		ScanID:    uuid.New().String(),
		Filter:    s.filter.Name(),
		Directory: dir,
		Pattern:   pattern,
		Criteria:  make(map[string]int),
		StartedAt: s.opts.Now(),
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return sum, err
	}
	sort.Strings(paths)
	sum.Files = len(paths)
	log.Debug("scan started", "scan_id", sum.ScanID, "filter", sum.Filter, "files", sum.Files)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			sum.Duration = s.opts.Now().Sub(sum.StartedAt)
			return sum, err
		}
		if err := s.scanFile(path, &sum); err != nil {
			sum.Errors++
			if s.opts.FailFast {
				sum.Duration = s.opts.Now().Sub(sum.StartedAt)
				return sum, err
			}
			log.Warn("skipping alert file", "path", path, "err", err)
		}
	}

	sum.Duration = s.opts.Now().Sub(sum.StartedAt)
	if s.summary != nil {
		if err := s.summary.WriteSummary(sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// scanFile decodes one file and evaluates the filter against its first
// packet.
func (s *Scanner) scanFile(path string, sum *Summary) error {
	a, err := alert.ReadFile(path)
	if err != nil {
		return err
	}
	sum.Decoded++

	res, err := s.filter.Evaluate(a)
	if err != nil {
		return err
	}
	for _, c := range res.Criteria {
		if c.Pass {
			sum.Criteria[c.Name]++
		}
	}
	if !res.Pass {
		sum.Rejected++
		return nil
	}

	sum.Passed++
	return s.writer.Write(newResultRow(sum.ScanID, sum.Filter, a, res.Criteria, s.opts.Now()))
}
