package filter

// Thresholds collects every tunable cut used by the filters. Values are
// loaded from the YAML config; Defaults matches the cuts published in
// the ZTF alert-stream workshop material.
type Thresholds struct {
	RBMin      float64               `yaml:"rb_min"`
	FWHMMin    float64               `yaml:"fwhm_min"`
	NBadMax    int                   `yaml:"nbad_max"`
	MagDiff    float64               `yaml:"mag_diff"`
	BrightStar BrightStarThresholds  `yaml:"bright_star"`
	NearStar   PointSourceThresholds `yaml:"point_source"`
	Supernova  SupernovaThresholds   `yaml:"supernova"`
}

// BrightStarThresholds bounds the catalog cross-match cut that rejects
// subtraction artifacts around bright stars.
type BrightStarThresholds struct {
	MaxDistArcsec float64 `yaml:"max_dist_arcsec"`
	SRMagMin      float64 `yaml:"srmag_min"`
	SRMagMax      float64 `yaml:"srmag_max"`
	SGScoreMin    float64 `yaml:"sgscore_min"`
}

// PointSourceThresholds bounds the veto for detections sitting on top of
// a likely stellar counterpart.
type PointSourceThresholds struct {
	SGScoreMin    float64 `yaml:"sgscore_min"`
	MaxDistArcsec float64 `yaml:"max_dist_arcsec"`
}

// SupernovaThresholds bounds the variability-history cut of the
// supernova candidate filter.
type SupernovaThresholds struct {
	MaxHistoryDays float64 `yaml:"max_history_days"`
}

// Defaults returns the workshop cuts.
func Defaults() Thresholds {
	return Thresholds{
		RBMin:   0.3,
		FWHMMin: 0.5,
		NBadMax: 5,
		MagDiff: 0.75,
		BrightStar: BrightStarThresholds{
			MaxDistArcsec: 20,
			SRMagMin:      0,
			SRMagMax:      15.0,
			SGScoreMin:    0.49,
		},
		NearStar: PointSourceThresholds{
			SGScoreMin:    0.76,
			MaxDistArcsec: 2,
		},
		Supernova: SupernovaThresholds{
			MaxHistoryDays: 30.0,
		},
	}
}
