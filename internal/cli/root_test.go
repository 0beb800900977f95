package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/epoch/internal/testutil"
	"github.com/roach88/epoch/internal/timeconv"
)

// execute runs the root command with args and returns stdout, stderr and the
// error returned by Execute.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "epoch", cmd.Name())
	assert.Contains(t, cmd.Long, "10^12")
	assert.Contains(t, cmd.Short, "unix timestamps")
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"verbose", "v", "false"},
		{"format", "f", "rfc3339"},
		{"unix", "", "false"},
		{"json", "", "false"},
		{"strftime", "", ""},
		{"input-tz", "", "utc"},
		{"output-tz", "", "utc"},
		{"ts", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, f, "flag --%s should exist", tt.name)
			assert.Equal(t, tt.shorthand, f.Shorthand)
			assert.Equal(t, tt.def, f.DefValue)
		})
	}
}

func TestRootOptions_OutputFormat(t *testing.T) {
	opts := &RootOptions{}
	assert.Equal(t, timeconv.RFC3339, opts.OutputFormat())

	opts.Unix = true
	assert.Equal(t, timeconv.Unix, opts.OutputFormat())

	opts = &RootOptions{JSON: true}
	assert.Equal(t, timeconv.JSON, opts.OutputFormat())

	opts = &RootOptions{Format: formatValue{format: timeconv.YAML}}
	assert.Equal(t, timeconv.YAML, opts.OutputFormat())
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"seconds_unix", []string{"1700000000", "--format", "unix"}, "1700000000\n"},
		{"millis_rfc3339", []string{"1700000000000", "--format", "rfc3339"}, "2023-11-14T22:13:20Z\n"},
		{"epoch_unix", []string{"1970/01/01 00:00:00", "--unix"}, "0\n"},
		{"epoch_rfc3339", []string{"1970/01/01 00:00:00"}, "1970-01-01T00:00:00Z\n"},
		{"leap_day", []string{"2024/02/29 12:00:00", "-f", "unix"}, "1709208000\n"},
		{"forced_millis", []string{"1700000000", "--ts", "millis"}, "1970-01-20T16:13:20Z\n"},
		{"negative_after_dashdash", []string{"--unix", "--", "-86400"}, "-86400\n"},
		{"strftime", []string{"2025/12/20 11:10:11", "--strftime", "%Y/%m/%d %H:%M:%S"}, "2025/12/20 11:10:11\n"},
		{"strftime_ignored_for_unix", []string{"1700000000", "--unix", "--strftime", "%Y"}, "1700000000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestConvertLocalZones(t *testing.T) {
	testutil.SetLocalZone(t, "America/New_York")

	t.Run("input_local", func(t *testing.T) {
		stdout, _, err := execute(t, "2024/07/01 12:00:00", "--input-tz", "local")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-01T16:00:00Z\n", stdout)
	})

	t.Run("output_local", func(t *testing.T) {
		stdout, _, err := execute(t, "1700000000", "--output-tz", "local")
		require.NoError(t, err)
		assert.Equal(t, "2023-11-14T17:13:20-05:00\n", stdout)
	})

	t.Run("dst_gap", func(t *testing.T) {
		stdout, _, err := execute(t, "2024/03/10 02:30:00", "--input-tz", "local")
		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, err.Error(), "non-existent local time")
	})
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"not_a_date", []string{"not-a-date"}, ExitFailure, `unrecognized input "not-a-date"`},
		{"not_a_date_json", []string{"not-a-date", "--json"}, ExitFailure, "unrecognized input"},
		{"empty", []string{""}, ExitFailure, "empty input"},
		{"non_leap_day", []string{"2023/02/29 12:00:00"}, ExitFailure, "day 29 out of range [1, 28]"},
		{"overflow", []string{"99999999999999999999"}, ExitFailure, "outside the supported range"},
		{"bad_separator", []string{"2024/02/29 12:00"}, ExitFailure, "HH:MM:SS"},
		{"missing_input", []string{}, ExitCommandError, "accepts 1 arg"},
		{"two_inputs", []string{"1", "2"}, ExitCommandError, "accepts 1 arg"},
		{"bad_format", []string{"1700000000", "--format", "xml"}, ExitCommandError, "invalid format"},
		{"bad_zone", []string{"1700000000", "--input-tz", "mars"}, ExitCommandError, "invalid time zone"},
		{"bad_unit", []string{"1700000000", "--ts", "nanos"}, ExitCommandError, "invalid unit"},
		{"negative_without_dashdash", []string{"-86400"}, ExitCommandError, "unknown shorthand flag"},
		{"conflicting_formats", []string{"1700000000", "--unix", "--json"}, ExitCommandError, "none of the others can be"},
		{"format_and_shorthand", []string{"1700000000", "--format", "json", "--unix"}, ExitCommandError, "none of the others can be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Empty(t, stdout, "nothing may be printed on failure")
			assert.Equal(t, tt.code, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConvertErrorMessageIsVerbatim(t *testing.T) {
	_, _, err := execute(t, "not-a-date")
	require.Error(t, err)

	_, convErr := timeconv.Convert("not-a-date", timeconv.ParseOptions{})
	require.Error(t, convErr)
	assert.Equal(t, convErr.Error(), err.Error())
	assert.True(t, timeconv.IsClassificationError(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "1700000000123", "--verbose", "--unix")
	require.NoError(t, err)
	assert.Equal(t, "1700000000\n", stdout)
	assert.Contains(t, stderr, `"msg":"converting"`)
	assert.Contains(t, stderr, `"kind":"unix milliseconds"`)
	assert.Contains(t, stderr, `"logger":"epoch"`)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}

func TestHelpText(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "YYYY/MM/DD HH:MM:SS")
	assert.Contains(t, stdout, "--input-tz")
	assert.Contains(t, stdout, "--strftime")
}
