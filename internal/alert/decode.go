// Avro OCF decoding for alert packets
package alert

import (
	"fmt"
	"io"
	"os"

	"github.com/linkedin/goavro/v2"
)

// ReadFile opens an alert file and decodes its first packet. ZTF
// distributes exactly one packet per file; any further records are
// ignored.
func ReadFile(path string) (*Alert, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.Path = path
	return a, nil
}

// Read decodes the first alert packet from an Avro object container stream.
func Read(r io.Reader) (*Alert, error) {
	ocfr, err := goavro.NewOCFReader(r)
	if err != nil {
		return nil, fmt.Errorf("open avro container: %w", err)
	}
	if !ocfr.Scan() {
		if err := ocfr.Err(); err != nil {
			return nil, fmt.Errorf("read avro container: %w", err)
		}
		return nil, fmt.Errorf("avro container holds no records")
	}
	datum, err := ocfr.Read()
	if err != nil {
		return nil, fmt.Errorf("decode avro record: %w", err)
	}
	record, ok := datum.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro record is %T, want map", datum)
	}
	return fromDatum(record)
}

func fromDatum(record map[string]interface{}) (*Alert, error) {
	a := &Alert{}
	if s, ok := unwrapUnion(record["objectId"]).(string); ok {
		a.ObjectID = s
	}
	if id := intField(record, "candid"); id != nil {
		a.Candid = int64(*id)
	}

	cv := unwrapUnion(record["candidate"])
	cand, ok := cv.(map[string]interface{})
	if !ok || cand == nil {
		return nil, ErrNoCandidate
	}

	a.Candidate = &Candidate{
		JD:          floatField(cand, "jd"),
		IsDiffPos:   stringField(cand, "isdiffpos"),
		RB:          floatField(cand, "rb"),
		FWHM:        floatField(cand, "fwhm"),
		NBad:        intField(cand, "nbad"),
		MagPSF:      floatField(cand, "magpsf"),
		MagAp:       floatField(cand, "magap"),
		SGScore1:    floatField(cand, "sgscore1"),
		SGScore2:    floatField(cand, "sgscore2"),
		SGScore3:    floatField(cand, "sgscore3"),
		DistPSNR1:   floatField(cand, "distpsnr1"),
		DistPSNR2:   floatField(cand, "distpsnr2"),
		DistPSNR3:   floatField(cand, "distpsnr3"),
		SRMag1:      floatField(cand, "srmag1"),
		SRMag2:      floatField(cand, "srmag2"),
		SRMag3:      floatField(cand, "srmag3"),
		JDStartHist: floatField(cand, "jdstarthist"),
		JDEndHist:   floatField(cand, "jdendhist"),
	}
	return a, nil
}

// unwrapUnion strips the single-key wrapper goavro uses for non-null
// union values, e.g. {"float": 0.9}. Null branches decode as plain nil.
func unwrapUnion(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) != 1 {
		return v
	}
	for _, inner := range m {
		return inner
	}
	return v
}

func floatField(m map[string]interface{}, name string) *float64 {
	v, ok := m[name]
	if !ok || v == nil {
		return nil
	}
	switch n := unwrapUnion(v).(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	}
	return nil
}

func intField(m map[string]interface{}, name string) *int {
	v, ok := m[name]
	if !ok || v == nil {
		return nil
	}
	switch n := unwrapUnion(v).(type) {
	case int64:
		i := int(n)
		return &i
	case int32:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

func stringField(m map[string]interface{}, name string) *string {
	v, ok := m[name]
	if !ok || v == nil {
		return nil
	}
	if s, ok := unwrapUnion(v).(string); ok {
		return &s
	}
	return nil
}
