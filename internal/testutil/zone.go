package testutil

import (
	"testing"
	"time"

	// Zone lookups must not depend on the host's zoneinfo.
	_ "time/tzdata"
)

// SetLocal replaces time.Local for the rest of the test and restores it on
// cleanup.
//
// time.Local is process-wide: tests using SetLocal must not call t.Parallel.
func SetLocal(t testing.TB, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() {
		time.Local = prev
	})
}

// MustLoadLocation loads an IANA zone from the embedded tz database, failing
// the test if the name is unknown.
func MustLoadLocation(t testing.TB, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %q: %v", name, err)
	}
	return loc
}

// SetLocalZone is SetLocal for a named IANA zone.
func SetLocalZone(t testing.TB, name string) *time.Location {
	t.Helper()
	loc := MustLoadLocation(t, name)
	SetLocal(t, loc)
	return loc
}
