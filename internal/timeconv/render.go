package timeconv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	strftime "github.com/ncruces/go-strftime"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is reported in structured output. Bump it only when a key
// is removed or changes meaning.
const SchemaVersion = 1

// RenderOptions controls Render.
type RenderOptions struct {
	// Zone used for string output. Default UTC.
	Zone Zone

	// Layout is a strftime layout (e.g. "%Y/%m/%d %H:%M:%S") that replaces
	// RFC3339 for the RFC3339 format. Structured formats ignore it.
	Layout string
}

// Render produces the display string for c. The result has no trailing newline.
func Render(c Conversion, f OutputFormat, opts RenderOptions) (string, error) {
	switch f {
	case RFC3339:
		if opts.Layout != "" {
			return strftime.Format(opts.Layout, c.Instant.Time().In(opts.Zone.Location())), nil
		}
		return FormatRFC3339(c.Instant, opts.Zone), nil
	case Unix:
		return strconv.FormatInt(c.Instant.Unix(), 10), nil
	case JSON:
		out, err := marshalCanonical(newReport(c, opts.Zone).fields())
		if err != nil {
			return "", fmt.Errorf("render json: %w", err)
		}
		return string(out), nil
	case YAML:
		out, err := yaml.Marshal(newReport(c, opts.Zone))
		if err != nil {
			return "", fmt.Errorf("render yaml: %w", err)
		}
		return strings.TrimSuffix(string(out), "\n"), nil
	default:
		return "", fmt.Errorf("unknown output format %d", int(f))
	}
}

// FormatRFC3339 renders i as RFC3339 in zone z. A fraction is printed only
// when the instant has one, with trailing zeros trimmed. UTC uses the "Z"
// suffix.
func FormatRFC3339(i Instant, z Zone) string {
	return i.Time().In(z.Location()).Format(time.RFC3339Nano)
}

// report is the structured document behind the JSON and YAML formats.
// Key names are a stable external contract.
type report struct {
	SchemaVersion int    `yaml:"schema_version"`
	Input         string `yaml:"input"`
	ParsedAs      string `yaml:"parsed_as"`
	TSUnit        string `yaml:"ts_unit,omitempty"`
	InputTZ       string `yaml:"input_tz"`
	OutputTZ      string `yaml:"output_tz"`
	Unix          int64  `yaml:"unix"`
	UnixMillis    int64  `yaml:"unix_millis"`
	RFC3339       string `yaml:"rfc3339"`
}

func newReport(c Conversion, out Zone) report {
	r := report{
		SchemaVersion: SchemaVersion,
		Input:         c.Input,
		ParsedAs:      "formatted",
		InputTZ:       c.InputZone.String(),
		OutputTZ:      out.String(),
		Unix:          c.Instant.Unix(),
		UnixMillis:    c.Instant.UnixMilli(),
		RFC3339:       FormatRFC3339(c.Instant, out),
	}
	switch c.Kind {
	case UnixSeconds:
		r.ParsedAs, r.TSUnit = "timestamp", UnitSeconds.String()
	case UnixMillis:
		r.ParsedAs, r.TSUnit = "timestamp", UnitMillis.String()
	}
	return r
}

func (r report) fields() map[string]any {
	m := map[string]any{
		"schema_version": r.SchemaVersion,
		"input":          r.Input,
		"parsed_as":      r.ParsedAs,
		"input_tz":       r.InputTZ,
		"output_tz":      r.OutputTZ,
		"unix":           r.Unix,
		"unix_millis":    r.UnixMillis,
		"rfc3339":        r.RFC3339,
	}
	if r.TSUnit != "" {
		m["ts_unit"] = r.TSUnit
	}
	return m
}
