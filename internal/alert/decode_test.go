package alert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linkedin/goavro/v2"
)

// testSchema is a trimmed alert schema covering the fields the filters
// read. The real ZTF schema carries many more, which decoding ignores.
const testSchema = `{
  "type": "record",
  "name": "alert",
  "fields": [
    {"name": "objectId", "type": "string"},
    {"name": "candid", "type": "long"},
    {"name": "candidate", "type": ["null", {
      "type": "record",
      "name": "candidate",
      "fields": [
        {"name": "jd", "type": ["null", "double"], "default": null},
        {"name": "isdiffpos", "type": ["null", "string"], "default": null},
        {"name": "rb", "type": ["null", "float"], "default": null},
        {"name": "fwhm", "type": ["null", "float"], "default": null},
        {"name": "nbad", "type": ["null", "int"], "default": null},
        {"name": "magpsf", "type": ["null", "float"], "default": null},
        {"name": "magap", "type": ["null", "float"], "default": null},
        {"name": "sgscore1", "type": ["null", "float"], "default": null},
        {"name": "distpsnr1", "type": ["null", "float"], "default": null},
        {"name": "srmag1", "type": ["null", "float"], "default": null},
        {"name": "sgscore2", "type": ["null", "float"], "default": null},
        {"name": "distpsnr2", "type": ["null", "float"], "default": null},
        {"name": "srmag2", "type": ["null", "float"], "default": null},
        {"name": "sgscore3", "type": ["null", "float"], "default": null},
        {"name": "distpsnr3", "type": ["null", "float"], "default": null},
        {"name": "srmag3", "type": ["null", "float"], "default": null},
        {"name": "jdstarthist", "type": ["null", "double"], "default": null},
        {"name": "jdendhist", "type": ["null", "double"], "default": null}
      ]
    }], "default": null}
  ]
}`

// writeAlertFile serializes one packet into an Avro OCF file.
func writeAlertFile(t *testing.T, path string, datum map[string]interface{}) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	w, err := goavro.NewOCFWriter(goavro.OCFConfig{W: f, Schema: testSchema})
	if err != nil {
		t.Fatalf("NewOCFWriter: %v", err)
	}
	if err := w.Append([]interface{}{datum}); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func testCandidateDatum() map[string]interface{} {
	return map[string]interface{}{
		"jd":          goavro.Union("double", 2459010.5),
		"isdiffpos":   goavro.Union("string", "t"),
		"rb":          goavro.Union("float", float32(0.9)),
		"fwhm":        goavro.Union("float", float32(1.2)),
		"nbad":        goavro.Union("int", int32(0)),
		"magpsf":      goavro.Union("float", float32(18.0)),
		"magap":       goavro.Union("float", float32(18.1)),
		"sgscore1":    goavro.Union("float", float32(0.95)),
		"distpsnr1":   goavro.Union("float", float32(1.5)),
		"srmag1":      goavro.Union("float", float32(12.5)),
		"jdstarthist": goavro.Union("double", 2459000.0),
		"jdendhist":   goavro.Union("double", 2459010.0),
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alert.avro")
	writeAlertFile(t, path, map[string]interface{}{
		"objectId":  "ZTF21abcdefg",
		"candid":    int64(1512345678901234567),
		"candidate": goavro.Union("candidate", testCandidateDatum()),
	})

	a, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if a.ObjectID != "ZTF21abcdefg" {
		t.Errorf("ObjectID = %q", a.ObjectID)
	}
	if a.Candid != 1512345678901234567 {
		t.Errorf("Candid = %d", a.Candid)
	}
	if a.Path != path {
		t.Errorf("Path = %q, want %q", a.Path, path)
	}
	c := a.Candidate
	if c == nil {
		t.Fatal("Candidate is nil")
	}
	if c.IsDiffPos == nil || *c.IsDiffPos != "t" {
		t.Errorf("IsDiffPos = %v", c.IsDiffPos)
	}
	// float32 round-trips keep about 7 significant digits
	if c.RB == nil || *c.RB < 0.89 || *c.RB > 0.91 {
		t.Errorf("RB = %v", c.RB)
	}
	if c.NBad == nil || *c.NBad != 0 {
		t.Errorf("NBad = %v", c.NBad)
	}
	if c.JDStartHist == nil || *c.JDStartHist != 2459000.0 {
		t.Errorf("JDStartHist = %v", c.JDStartHist)
	}
	if d := c.HistoryDays(); d == nil || *d != 10.0 {
		t.Errorf("HistoryDays = %v", d)
	}
	// fields absent from the packet decode as nil
	if c.SGScore2 != nil || c.DistPSNR3 != nil {
		t.Errorf("unset cross-match fields are not nil: %v %v", c.SGScore2, c.DistPSNR3)
	}
}

func TestReadFile_NullFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.avro")
	cand := testCandidateDatum()
	cand["rb"] = nil
	cand["isdiffpos"] = nil
	writeAlertFile(t, path, map[string]interface{}{
		"objectId":  "ZTF21sparse",
		"candid":    int64(7),
		"candidate": goavro.Union("candidate", cand),
	})

	a, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if a.Candidate.RB != nil {
		t.Errorf("null rb decoded as %v", *a.Candidate.RB)
	}
	if a.Candidate.IsDiffPos != nil {
		t.Errorf("null isdiffpos decoded as %v", *a.Candidate.IsDiffPos)
	}
}

func TestReadFile_NoCandidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nocand.avro")
	writeAlertFile(t, path, map[string]interface{}{
		"objectId":  "ZTF21nocand",
		"candid":    int64(9),
		"candidate": nil,
	})

	_, err := ReadFile(path)
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("err = %v, want ErrNoCandidate", err)
	}
}

func TestReadFile_OnlyFirstRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "double.avro")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := goavro.NewOCFWriter(goavro.OCFConfig{W: f, Schema: testSchema})
	if err != nil {
		t.Fatalf("NewOCFWriter: %v", err)
	}
	first := map[string]interface{}{
		"objectId": "ZTF21first", "candid": int64(1),
		"candidate": goavro.Union("candidate", testCandidateDatum()),
	}
	second := map[string]interface{}{
		"objectId": "ZTF21second", "candid": int64(2),
		"candidate": goavro.Union("candidate", testCandidateDatum()),
	}
	if err := w.Append([]interface{}{first, second}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	f.Close()

	a, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if a.ObjectID != "ZTF21first" {
		t.Errorf("ObjectID = %q, want the first record", a.ObjectID)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.avro")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.avro")
	if err := os.WriteFile(path, []byte("not an avro container"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
