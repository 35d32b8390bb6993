// Boolean cuts over one alert candidate. Every cut treats a missing
// (nil) field as failing the comparison that reads it; none of them
// return errors.
package filter

import "alertsift/internal/alert"

// PositiveSubtraction reports whether the detection is brighter in the
// science image than in the reference. The survey encodes this as the
// literal strings "t" or "1"; anything else, including a missing field,
// counts as negative.
func PositiveSubtraction(c *alert.Candidate) bool {
	if c.IsDiffPos == nil {
		return false
	}
	return *c.IsDiffPos == "t" || *c.IsDiffPos == "1"
}

// Real applies the image-quality cuts separating astrophysical
// detections from subtraction artifacts: real-bogus score, PSF width,
// bad-pixel count, and the PSF-vs-aperture magnitude comparison.
//
// The magnitude comparison is a disjunction, so any pair of present
// magnitudes satisfies it; an absolute-value cut |magpsf-magap| < 0.75
// would actually constrain the shape. The published workshop cut uses
// the disjunction, so it is kept verbatim here.
func Real(c *alert.Candidate, t Thresholds) bool {
	if c.RB == nil || *c.RB <= t.RBMin {
		return false
	}
	if c.FWHM == nil || *c.FWHM <= t.FWHMMin {
		return false
	}
	if c.NBad == nil || *c.NBad >= t.NBadMax {
		return false
	}
	if c.MagPSF == nil || c.MagAp == nil {
		return false
	}
	d := *c.MagPSF - *c.MagAp
	return d < t.MagDiff || d > -t.MagDiff
}

// BrightStarArtifact reports whether any of the three nearest catalog
// cross-matches looks like a bright star close enough to contaminate
// the subtraction. A catalog magnitude of exactly 0 is a sentinel for
// "no measurement" and is excluded by the strict srmag > min bound.
func BrightStarArtifact(c *alert.Candidate, t Thresholds) bool {
	for _, m := range c.CatalogMatches() {
		if m.DistPSNR == nil || m.SRMag == nil || m.SGScore == nil {
			continue
		}
		if *m.DistPSNR < t.BrightStar.MaxDistArcsec &&
			*m.SRMag > t.BrightStar.SRMagMin &&
			*m.SRMag < t.BrightStar.SRMagMax &&
			*m.SGScore > t.BrightStar.SGScoreMin {
			return true
		}
	}
	return false
}

// NearPointSource reports whether the nearest catalog counterpart is
// both star-like and within the veto radius. Missing fields leave the
// detection unvetoed.
func NearPointSource(c *alert.Candidate, t Thresholds) bool {
	if c.SGScore1 == nil || c.DistPSNR1 == nil {
		return false
	}
	return *c.SGScore1 > t.NearStar.SGScoreMin && *c.DistPSNR1 < t.NearStar.MaxDistArcsec
}

// ShortHistory reports whether the span of the variability history is
// strictly below maxDays. Detections with either endpoint missing fail
// the cut.
func ShortHistory(c *alert.Candidate, maxDays float64) bool {
	d := c.HistoryDays()
	return d != nil && *d < maxDays
}
