package main

import (
	"alertsift/internal/scan"
)

// newWriters sets up result and summary writers based on flags. It
// returns the writers and a cleanup function to close any resources.
// The collector always receives rows so the TUI can browse them after
// the scan.
func newWriters(color, objects, quietStdout bool, logFile string, collector *scan.CollectWriter) (scan.ResultWriter, scan.SummaryWriter, func(), error) {
	cleanup := func() {}

	rws := []scan.ResultWriter{collector}
	sws := []scan.SummaryWriter{collector}

	// The TUI owns the terminal, so stdout printing is skipped in that
	// mode.
	if !quietStdout {
		switch {
		case objects:
			// objectId-only rows; the summary is still reported
			rws = append(rws, scan.NewObjectsWriter())
			if color {
				sws = append(sws, scan.NewColorStdoutWriter())
			} else {
				sws = append(sws, scan.NewStdoutWriter())
			}
		case color:
			cw := scan.NewColorStdoutWriter()
			rws = append(rws, cw)
			sws = append(sws, cw)
		default:
			sw := scan.NewStdoutWriter()
			rws = append(rws, sw)
			sws = append(sws, sw)
		}
	}

	if logFile != "" {
		fw, err := scan.NewFileWriter(logFile, logFile+".summary")
		if err != nil {
			return nil, nil, nil, err
		}
		rws = append(rws, fw)
		sws = append(sws, fw)
		cleanup = func() { fw.Close() }
	}

	mw := scan.NewMultiWriter(rws, sws)
	return mw, mw, cleanup, nil
}
