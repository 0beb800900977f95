package timeconv

import (
	"fmt"
	"time"
)

// InputKind is the shape of a raw input as decided by Classify.
type InputKind int

const (
	UnixSeconds InputKind = iota
	UnixMillis
	FormattedDateTime
)

func (k InputKind) String() string {
	switch k {
	case UnixSeconds:
		return "unix seconds"
	case UnixMillis:
		return "unix milliseconds"
	case FormattedDateTime:
		return "formatted datetime"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// IsNumeric reports whether the kind is one of the timestamp kinds.
func (k InputKind) IsNumeric() bool {
	return k == UnixSeconds || k == UnixMillis
}

// Unit forces how a numeric input is read. UnitAuto defers to Classify.
type Unit int

const (
	UnitAuto Unit = iota
	UnitSeconds
	UnitMillis
)

// Units lists the flag spellings accepted by ParseUnit.
var Units = []string{"seconds", "millis"}

func (u Unit) String() string {
	switch u {
	case UnitSeconds:
		return "seconds"
	case UnitMillis:
		return "millis"
	default:
		return "auto"
	}
}

// ParseUnit converts a flag value into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "seconds":
		return UnitSeconds, nil
	case "millis":
		return UnitMillis, nil
	case "", "auto":
		return UnitAuto, nil
	}
	return UnitAuto, fmt.Errorf("invalid unit %q: must be one of %v", s, Units)
}

// Zone selects the time zone used to read formatted input or render output.
type Zone int

const (
	ZoneUTC Zone = iota
	ZoneLocal
)

// Zones lists the flag spellings accepted by ParseZone.
var Zones = []string{"utc", "local"}

func (z Zone) String() string {
	if z == ZoneLocal {
		return "local"
	}
	return "utc"
}

// Location returns the *time.Location for the zone. ZoneLocal is resolved
// at call time so tests can swap time.Local.
func (z Zone) Location() *time.Location {
	if z == ZoneLocal {
		return time.Local
	}
	return time.UTC
}

// ParseZone converts a flag value into a Zone.
func ParseZone(s string) (Zone, error) {
	switch s {
	case "utc", "UTC":
		return ZoneUTC, nil
	case "local":
		return ZoneLocal, nil
	}
	return ZoneUTC, fmt.Errorf("invalid time zone %q: must be one of %v", s, Zones)
}

// OutputFormat selects the renderer.
type OutputFormat int

const (
	RFC3339 OutputFormat = iota
	Unix
	JSON
	YAML
)

// OutputFormats lists the flag spellings accepted by ParseOutputFormat.
var OutputFormats = []string{"rfc3339", "unix", "json", "yaml"}

func (f OutputFormat) String() string {
	if int(f) >= 0 && int(f) < len(OutputFormats) {
		return OutputFormats[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range OutputFormats {
		if name == s {
			return OutputFormat(i), nil
		}
	}
	return RFC3339, fmt.Errorf("invalid format %q: must be one of %v", s, OutputFormats)
}

// Conversion is the outcome of Convert: the normalized instant plus what the
// structured renderers report about how it was obtained.
type Conversion struct {
	Input     string
	Kind      InputKind
	Instant   Instant
	InputZone Zone
}
