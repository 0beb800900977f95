package cli

import (
	"github.com/spf13/pflag"

	"github.com/roach88/epoch/internal/timeconv"
)

// Enumerated flags implement pflag.Value so a bad value is rejected while
// flags are parsed, before any conversion runs.
var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*zoneValue)(nil)
	_ pflag.Value = (*unitValue)(nil)
)

type formatValue struct {
	format timeconv.OutputFormat
}

func (v *formatValue) String() string { return v.format.String() }

func (v *formatValue) Set(s string) error {
	f, err := timeconv.ParseOutputFormat(s)
	if err != nil {
		return err
	}
	v.format = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

type zoneValue struct {
	zone timeconv.Zone
}

func (v *zoneValue) String() string { return v.zone.String() }

func (v *zoneValue) Set(s string) error {
	z, err := timeconv.ParseZone(s)
	if err != nil {
		return err
	}
	v.zone = z
	return nil
}

func (v *zoneValue) Type() string { return "zone" }

type unitValue struct {
	unit timeconv.Unit
}

func (v *unitValue) String() string {
	if v.unit == timeconv.UnitAuto {
		return ""
	}
	return v.unit.String()
}

func (v *unitValue) Set(s string) error {
	u, err := timeconv.ParseUnit(s)
	if err != nil {
		return err
	}
	v.unit = u
	return nil
}

func (v *unitValue) Type() string { return "unit" }
