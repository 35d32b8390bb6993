// Filter variants combining the candidate cuts into pass/fail verdicts
package filter

import (
	"fmt"

	"alertsift/internal/alert"
)

// Filter decides whether one alert packet passes.
type Filter interface {
	// Name returns the identifier used on the CLI and in scan output.
	Name() string
	// Evaluate applies the filter to one alert. It returns
	// alert.ErrNoCandidate when the packet carries no candidate record;
	// missing individual fields are not errors.
	Evaluate(a *alert.Alert) (Result, error)
}

// Result is the verdict for one alert plus the per-cut breakdown.
type Result struct {
	Pass     bool
	Criteria []CriterionResult
}

// CriterionResult records how one cut evaluated.
type CriterionResult struct {
	Name      string `json:"name"`
	Threshold string `json:"threshold"`
	Actual    string `json:"actual"`
	Pass      bool   `json:"pass"`
}

// Known filter names, in CLI order.
const (
	NameBasic     = "basic"
	NameVeto      = "veto"
	NameSupernova = "supernova"
)

// Names lists the filters the factory can build.
func Names() []string {
	return []string{NameBasic, NameVeto, NameSupernova}
}

// New builds the named filter with the given thresholds.
func New(name string, t Thresholds) (Filter, error) {
	switch name {
	case NameBasic:
		return &basicFilter{t: t}, nil
	case NameVeto:
		return &vetoFilter{t: t}, nil
	case NameSupernova:
		return &supernovaFilter{t: t}, nil
	}
	return nil, fmt.Errorf("unknown filter %q (known: %v)", name, Names())
}

// basicFilter keeps real, positive-subtraction detections that are not
// bright-star artifacts.
type basicFilter struct {
	t Thresholds
}

func (f *basicFilter) Name() string { return NameBasic }

func (f *basicFilter) Evaluate(a *alert.Alert) (Result, error) {
	c := a.Candidate
	if c == nil {
		return Result{}, alert.ErrNoCandidate
	}
	crit := baseCriteria(c, f.t)
	return verdict(crit), nil
}

// vetoFilter narrows basicFilter by vetoing detections sitting on a
// likely stellar counterpart.
type vetoFilter struct {
	t Thresholds
}

func (f *vetoFilter) Name() string { return NameVeto }

func (f *vetoFilter) Evaluate(a *alert.Alert) (Result, error) {
	c := a.Candidate
	if c == nil {
		return Result{}, alert.ErrNoCandidate
	}
	crit := append(baseCriteria(c, f.t), pointSourceCriterion(c, f.t))
	return verdict(crit), nil
}

// supernovaFilter narrows vetoFilter to young transients by bounding
// the span of the variability history.
type supernovaFilter struct {
	t Thresholds
}

func (f *supernovaFilter) Name() string { return NameSupernova }

func (f *supernovaFilter) Evaluate(a *alert.Alert) (Result, error) {
	c := a.Candidate
	if c == nil {
		return Result{}, alert.ErrNoCandidate
	}
	crit := append(baseCriteria(c, f.t), pointSourceCriterion(c, f.t))
	maxDays := f.t.Supernova.MaxHistoryDays
	crit = append(crit, CriterionResult{
		Name:      "short history",
		Threshold: fmt.Sprintf("jdendhist - jdstarthist < %g d", maxDays),
		Actual:    fmtDays(c.HistoryDays()),
		Pass:      ShortHistory(c, maxDays),
	})
	return verdict(crit), nil
}

// baseCriteria evaluates the three cuts shared by every variant.
func baseCriteria(c *alert.Candidate, t Thresholds) []CriterionResult {
	return []CriterionResult{
		{
			Name:      "real",
			Threshold: fmt.Sprintf("rb > %g, fwhm > %g, nbad < %d, mag diff cut", t.RBMin, t.FWHMMin, t.NBadMax),
			Actual: fmt.Sprintf("rb=%s fwhm=%s nbad=%s magpsf=%s magap=%s",
				fmtFloat(c.RB), fmtFloat(c.FWHM), fmtInt(c.NBad), fmtFloat(c.MagPSF), fmtFloat(c.MagAp)),
			Pass: Real(c, t),
		},
		{
			Name:      "positive subtraction",
			Threshold: `isdiffpos in {"t", "1"}`,
			Actual:    fmtString(c.IsDiffPos),
			Pass:      PositiveSubtraction(c),
		},
		{
			Name: "no bright star artifact",
			Threshold: fmt.Sprintf("no match with dist < %g\", %g < srmag < %g, sgscore > %g",
				t.BrightStar.MaxDistArcsec, t.BrightStar.SRMagMin, t.BrightStar.SRMagMax, t.BrightStar.SGScoreMin),
			Actual: fmt.Sprintf("dist=[%s %s %s] srmag=[%s %s %s] sgscore=[%s %s %s]",
				fmtFloat(c.DistPSNR1), fmtFloat(c.DistPSNR2), fmtFloat(c.DistPSNR3),
				fmtFloat(c.SRMag1), fmtFloat(c.SRMag2), fmtFloat(c.SRMag3),
				fmtFloat(c.SGScore1), fmtFloat(c.SGScore2), fmtFloat(c.SGScore3)),
			Pass: !BrightStarArtifact(c, t),
		},
	}
}

func pointSourceCriterion(c *alert.Candidate, t Thresholds) CriterionResult {
	return CriterionResult{
		Name: "away from point source",
		Threshold: fmt.Sprintf("not (sgscore1 > %g and distpsnr1 < %g\")",
			t.NearStar.SGScoreMin, t.NearStar.MaxDistArcsec),
		Actual: fmt.Sprintf("sgscore1=%s distpsnr1=%s", fmtFloat(c.SGScore1), fmtFloat(c.DistPSNR1)),
		Pass:   !NearPointSource(c, t),
	}
}

// verdict ANDs the criteria into a Result.
func verdict(crit []CriterionResult) Result {
	r := Result{Pass: true, Criteria: crit}
	for _, c := range crit {
		if !c.Pass {
			r.Pass = false
			break
		}
	}
	return r
}

func fmtFloat(p *float64) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%.3f", *p)
}

func fmtInt(p *int) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%d", *p)
}

func fmtString(p *string) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%q", *p)
}

func fmtDays(p *float64) string {
	if p == nil {
		return "absent"
	}
	return fmt.Sprintf("%.2f d", *p)
}

var (
	_ Filter = (*basicFilter)(nil)
	_ Filter = (*vetoFilter)(nil)
	_ Filter = (*supernovaFilter)(nil)
)
