package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/corey/convertx/internal/domain/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree in-process.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	root := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestConvert_EndToEnd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"length", "1", "--from", "kilometers", "--to", "meters"}, "1.0000 kilometers = 1000.0000 meters"},
		{[]string{"length", "1", "--from", "kilometers", "--to", "feet"}, "1.0000 kilometers = 3280.8400 feet"},
		{[]string{"temperature", "32", "--from", "f", "--to", "c"}, "32.00°F = 0.00°C"},
		{[]string{"temperature", "100", "-f", "F", "-t", "C"}, "100.00°F = 37.78°C"},
		{[]string{"mass", "1", "--from", "kg", "--to", "lb"}, "1.0000 kg = 2.2046 lb"},
		{[]string{"datarate", "1", "--from", "mbps", "--to", "bps"}, "1.0000 mbps = 1000000.0000 bps"},
		{[]string{"area", "1", "--from", "acres", "--to", "sqm"}, "1.0000 acres = 4046.8564 sqm"},
		{[]string{"volume", "1", "--from", "gallons", "--to", "liters"}, "1.0000 gallons = 3.7854 liters"},
		{[]string{"speed", "60", "--from", "mph", "--to", "kph"}, "60.0000 mph = 96.5606 kph"},
		{[]string{"pressure", "1", "--from", "atm", "--to", "psi"}, "1.0000 atm = 14.6959 psi"},
		{[]string{"energy", "1", "--from", "kwh", "--to", "joules"}, "1.0000 kwh = 3600000.0000 joules"},
		{[]string{"angle", "1", "--from", "turns", "--to", "degrees"}, "1.0000 turns = 360.0000 degrees"},
		{[]string{"voltage", "12"}, "12.0000 volts = 12.0000 volts"},
		{[]string{"amount", "2.5", "-f", "MOLES", "-t", "moles"}, "2.5000 moles = 2.5000 moles"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestConvert_LengthDefaults(t *testing.T) {
	stdout, _, err := execute(t, "length", "1")
	require.NoError(t, err)
	assert.Equal(t, "1.0000 meters = 3.2808 feet\n", stdout)
}

func TestConvert_NegativeValueAfterDoubleDash(t *testing.T) {
	stdout, _, err := execute(t, "temperature", "-f", "c", "-t", "f", "--", "-40")
	require.NoError(t, err)
	assert.Equal(t, "-40.00°C = -40.00°F\n", stdout)
}

func TestConvert_Unsupported(t *testing.T) {
	stdout, _, err := execute(t, "luminous", "1", "--from", "candela", "--to", "lumen")
	require.NoError(t, err)
	assert.Contains(t, stdout, "not directly supported")
	assert.Equal(t, 0, ExitCode(err))
}

func TestConvert_InvalidUnit(t *testing.T) {
	stdout, _, err := execute(t, "mass", "1", "--from", "stone", "--to", "kg")
	require.Error(t, err)
	assert.Empty(t, stdout, "nothing should be converted")
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), `invalid mass unit "stone" (valid: kg, lb, oz)`)
}

func TestConvert_UnitFromAnotherCategory(t *testing.T) {
	_, _, err := execute(t, "length", "1", "--from", "kg", "--to", "meters")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestConvert_MissingRequiredFlag(t *testing.T) {
	_, _, err := execute(t, "pressure", "1", "--from", "atm")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), "--to")
	assert.Contains(t, err.Error(), "pa, bar, atm, psi")
}

func TestConvert_BadValue(t *testing.T) {
	for _, v := range []string{"abc", "NaN", "Inf", ""} {
		_, _, err := execute(t, "length", v, "-f", "meters", "-t", "feet")
		require.Error(t, err, v)
		assert.Equal(t, 2, ExitCode(err), v)
	}
}

func TestConvert_WrongArgCount(t *testing.T) {
	_, _, err := execute(t, "length")
	assert.Equal(t, 2, ExitCode(err))

	_, _, err = execute(t, "length", "1", "2")
	assert.Equal(t, 2, ExitCode(err))
}

func TestConvert_NegativeWithoutDoubleDash(t *testing.T) {
	_, _, err := execute(t, "temperature", "-40", "-f", "c", "-t", "f")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestBytes(t *testing.T) {
	stdout, _, err := execute(t, "bytes", "1048576", "--megabytes")
	require.NoError(t, err)
	assert.Equal(t, "1048576 bytes = 1.00 MB\n", stdout)

	stdout, _, err = execute(t, "bytes", "1023", "-r")
	require.NoError(t, err)
	assert.Equal(t, "1023 bytes = 1023.00 B\n", stdout)

	stdout, _, err = execute(t, "bytes", "1024", "--human-readable")
	require.NoError(t, err)
	assert.Equal(t, "1024 bytes = 1.00 KB\n", stdout)

	stdout, _, err = execute(t, "bytes", "1024")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Please specify --megabytes or --human-readable")
}

func TestBytes_RejectsNegative(t *testing.T) {
	_, _, err := execute(t, "bytes", "-m", "--", "-1")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestTime(t *testing.T) {
	stdout, _, err := execute(t, "time", "3661", "--human-readable")
	require.NoError(t, err)
	assert.Equal(t, "3661 seconds = 1h 1m 1s\n", stdout)

	stdout, _, err = execute(t, "time", "0", "-r")
	require.NoError(t, err)
	assert.Equal(t, "0 seconds = 0s\n", stdout)

	stdout, _, err = execute(t, "time", "90061")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Please specify --human-readable")
}

func TestUnits_List(t *testing.T) {
	stdout, _, err := execute(t, "units")
	require.NoError(t, err)
	for _, c := range units.Categories() {
		assert.Contains(t, stdout, c.String())
	}
	assert.Contains(t, stdout, "meters* feet inches kilometers")
	assert.Contains(t, stdout, "candela* lumen lux  (same-unit only)")
	assert.NotContains(t, stdout, "\033[", "NO_COLOR must disable escapes")
}

func TestUnits_OneCategory(t *testing.T) {
	stdout, _, err := execute(t, "units", "Pressure")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pressure  pa* bar atm psi")
	assert.NotContains(t, stdout, "length")

	_, _, err = execute(t, "units", "weight")
	assert.Equal(t, 2, ExitCode(err))
}

func TestUnits_ColorAlways(t *testing.T) {
	stdout, _, err := execute(t, "units", "mass", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, stdout, colorGreen+"kg*"+colorReset)
}

func TestLogLevel_DebugGoesToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-level", "debug", "mass", "1", "-f", "kg", "-t", "oz")
	require.NoError(t, err)
	assert.Equal(t, "1.0000 kg = 35.2740 oz\n", stdout)
	assert.Contains(t, stderr, "msg=converted")
}

func TestLogLevel_Invalid(t *testing.T) {
	_, _, err := execute(t, "--log-level", "chatty", "length", "1")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "weight", "1")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestEveryCategoryHasACommand(t *testing.T) {
	root := newRootCmd()
	for _, c := range units.Categories() {
		sub, _, err := root.Find([]string{c.String()})
		require.NoError(t, err, c.String())
		assert.Equal(t, c.String(), sub.Name())
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(&usageError{cmdPath: "convertx", err: errors.New("bad")}))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, &usageError{cmdPath: "convertx mass", err: errors.New("bad unit")})
	assert.Equal(t, "error: bad unit\nRun 'convertx mass --help' for usage.\n", buf.String())

	buf.Reset()
	Report(&buf, errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}
