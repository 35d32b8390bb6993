// Alert packet model for ZTF-style difference-imaging detections
package alert

import "errors"

// ErrNoCandidate is returned when a packet carries no candidate record.
var ErrNoCandidate = errors.New("alert has no candidate record")

// Alert is one decoded alert packet.
type Alert struct {
	ObjectID  string     `json:"objectId"`
	Candid    int64      `json:"candid"`
	Candidate *Candidate `json:"candidate"`
	Path      string     `json:"-"` // file the packet was read from
}

// Candidate holds the detection measurements consulted by the filters.
// Fields are pointers because the upstream Avro schema declares them
// nullable; nil means the survey pipeline did not populate the field.
type Candidate struct {
	JD          *float64 `json:"jd"`
	IsDiffPos   *string  `json:"isdiffpos"`
	RB          *float64 `json:"rb"`
	FWHM        *float64 `json:"fwhm"`
	NBad        *int     `json:"nbad"`
	MagPSF      *float64 `json:"magpsf"`
	MagAp       *float64 `json:"magap"`
	SGScore1    *float64 `json:"sgscore1"`
	SGScore2    *float64 `json:"sgscore2"`
	SGScore3    *float64 `json:"sgscore3"`
	DistPSNR1   *float64 `json:"distpsnr1"`
	DistPSNR2   *float64 `json:"distpsnr2"`
	DistPSNR3   *float64 `json:"distpsnr3"`
	SRMag1      *float64 `json:"srmag1"`
	SRMag2      *float64 `json:"srmag2"`
	SRMag3      *float64 `json:"srmag3"`
	JDStartHist *float64 `json:"jdstarthist"`
	JDEndHist   *float64 `json:"jdendhist"`
}

// CatalogMatch is one of the three nearest PS1 catalog cross-matches.
type CatalogMatch struct {
	DistPSNR *float64
	SRMag    *float64
	SGScore  *float64
}

// CatalogMatches returns the three nearest-source cross-matches in order.
func (c *Candidate) CatalogMatches() [3]CatalogMatch {
	return [3]CatalogMatch{
		{DistPSNR: c.DistPSNR1, SRMag: c.SRMag1, SGScore: c.SGScore1},
		{DistPSNR: c.DistPSNR2, SRMag: c.SRMag2, SGScore: c.SGScore2},
		{DistPSNR: c.DistPSNR3, SRMag: c.SRMag3, SGScore: c.SGScore3},
	}
}

// HistoryDays returns the span of the variability history in days,
// or nil when either endpoint is missing.
func (c *Candidate) HistoryDays() *float64 {
	if c.JDStartHist == nil || c.JDEndHist == nil {
		return nil
	}
	d := *c.JDEndHist - *c.JDStartHist
	return &d
}
