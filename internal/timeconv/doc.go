// Package timeconv converts unix timestamps and formatted datetimes into a
// normalized Instant and renders it in the supported output formats.
//
// PIPELINE:
//
//	raw string -> Classify -> InputKind -> Parse -> Instant -> Render -> string
//
// Every step is a pure function. Nothing here reads the clock, touches the
// filesystem, or writes to stdout; the CLI layer owns all I/O.
//
// SECONDS VS MILLISECONDS:
//
// A numeric input whose absolute value is >= 10^12 (MillisThreshold) is read
// as milliseconds, anything smaller as seconds. 10^12 seconds lies far past
// year 9999 and 10^12 milliseconds is 2001-09-09, so the cutoff never
// misreads a current-era timestamp. The threshold is part of the CLI contract
// and must not change between releases.
//
// FORMATTED INPUT:
//
// Formatted input uses the layout YYYY/MM/DD HH:MM:SS (month, day, hour,
// minute and second may be unpadded) and is interpreted as UTC unless the
// caller asks for local time.
package timeconv
