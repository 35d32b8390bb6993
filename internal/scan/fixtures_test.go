package scan

import (
	"os"
	"testing"

	"github.com/linkedin/goavro/v2"
)

// fixtureSchema is just wide enough for the cuts the filters read.
const fixtureSchema = `{
  "type": "record",
  "name": "alert",
  "fields": [
    {"name": "objectId", "type": "string"},
    {"name": "candid", "type": "long"},
    {"name": "candidate", "type": ["null", {
      "type": "record",
      "name": "candidate",
      "fields": [
        {"name": "isdiffpos", "type": ["null", "string"], "default": null},
        {"name": "rb", "type": ["null", "double"], "default": null},
        {"name": "fwhm", "type": ["null", "double"], "default": null},
        {"name": "nbad", "type": ["null", "int"], "default": null},
        {"name": "magpsf", "type": ["null", "double"], "default": null},
        {"name": "magap", "type": ["null", "double"], "default": null},
        {"name": "sgscore1", "type": ["null", "double"], "default": null},
        {"name": "distpsnr1", "type": ["null", "double"], "default": null},
        {"name": "srmag1", "type": ["null", "double"], "default": null},
        {"name": "jdstarthist", "type": ["null", "double"], "default": null},
        {"name": "jdendhist", "type": ["null", "double"], "default": null}
      ]
    }], "default": null}
  ]
}`

// writeFixture serializes one packet. rb below the default cut makes
// the candidate fail every filter; rb above it passes the defaults.
func writeFixture(t *testing.T, path, objectID string, rb float64) {
	t.Helper()
	datum := map[string]interface{}{
		"objectId": objectID,
		"candid":   int64(100),
		"candidate": goavro.Union("candidate", map[string]interface{}{
			"isdiffpos":   goavro.Union("string", "t"),
			"rb":          goavro.Union("double", rb),
			"fwhm":        goavro.Union("double", 1.2),
			"nbad":        goavro.Union("int", int32(0)),
			"magpsf":      goavro.Union("double", 18.0),
			"magap":       goavro.Union("double", 18.1),
			"jdstarthist": goavro.Union("double", 2459000.0),
			"jdendhist":   goavro.Union("double", 2459010.0),
		}),
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	w, err := goavro.NewOCFWriter(goavro.OCFConfig{W: f, Schema: fixtureSchema})
	if err != nil {
		t.Fatalf("NewOCFWriter: %v", err)
	}
	if err := w.Append([]interface{}{datum}); err != nil {
		t.Fatalf("Append: %v", err)
	}
}
