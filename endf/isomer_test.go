package endf

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isodata/go-endf/nuclide"
)

// writeDecayFile writes a minimal decay-data file for the named isomer into
// dir and returns its filename. Lines other than the two marker lines mimic
// the header noise of real evaluation files and must be ignored.
func writeDecayFile(t *testing.T, dir, name, halfLifeLine, decayModeLine string) string {
	t.Helper()

	filename, err := nuclide.FilenameFromName(name)
	require.NoError(t, err)

	content := " 27-Co- 60 BNL        EVAL-AUG11 A.A.SONZOGNI\n" +
		" Parent Excitation Energy: 0.0\n"
	if halfLifeLine != "" {
		content += halfLifeLine + "\n"
	}
	content += "Parent Spin: 5.0\n"
	if decayModeLine != "" {
		content += decayModeLine + "\n"
	}
	content += "Recommended decay data follow\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))

	return filename
}

func TestLoadBetaMinus(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	writeDecayFile(t, dir, "Co60",
		"Parent half-life: 5.2714 Y (8)",
		"Decay Mode: B- 100.0")

	iso, err := Load("Co60", dir)
	require.NoError(err)

	require.Equal("Co60", iso.Name())
	require.Equal(27, iso.AtomicNumber())
	require.Equal(60, iso.AtomicMass())
	require.Equal(0, iso.EnergyState())
	require.False(iso.Stable())
	require.InEpsilon(math.Ln2/(5.2714*3.1536e7), iso.DecayRate(), 1e-12)
	require.Equal(1, iso.DecayAtomicNumberChange())
	require.Equal(0, iso.DecayAtomicMassChange())
	require.Equal("Isomer data for Co60", iso.String())

	daughter, err := iso.DaughterName()
	require.NoError(err)
	require.Equal("Ni60", daughter)
}

func TestLoadStable(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	// Stable files carry no decay mode line at all.
	writeDecayFile(t, dir, "Ni60", "Parent half-life: STABLE", "")

	iso, err := Load("Ni60", dir)
	require.NoError(err)

	require.True(iso.Stable())
	require.Equal(0.0, iso.DecayRate())
	require.Equal(0, iso.DecayAtomicNumberChange())
	require.Equal(0, iso.DecayAtomicMassChange())

	daughter, err := iso.DaughterName()
	require.NoError(err)
	require.Equal("Ni60", daughter)
}

func TestLoadDecayModes(t *testing.T) {
	tests := []struct {
		description          string // Test case description
		name                 string // Isomer to load
		decayModeLine        string // Decay mode line in the file
		expectedNumberChange int    // expected result from DecayAtomicNumberChange()
		expectedMassChange   int    // expected result from DecayAtomicMassChange()
		expectedDaughter     string // expected result from DaughterName()
	}{
		{
			description:          "Alpha decay",
			name:                 "U238",
			decayModeLine:        "Decay Mode: A 100.0",
			expectedNumberChange: -2,
			expectedMassChange:   -4,
			expectedDaughter:     "Th234",
		},
		{
			description:          "Beta-minus decay",
			name:                 "Sr90",
			decayModeLine:        "Decay Mode: B- 100.0",
			expectedNumberChange: 1,
			expectedMassChange:   0,
			expectedDaughter:     "Y90",
		},
		{
			description:          "Electron capture",
			name:                 "Fe55",
			decayModeLine:        "Decay Mode: EC 100.0",
			expectedNumberChange: -1,
			expectedMassChange:   0,
			expectedDaughter:     "Mn55",
		},
	}

	require := require.New(t)
	dir := t.TempDir()

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		writeDecayFile(t, dir, test.name, "Parent half-life: 1.0 Y (8)", test.decayModeLine)

		iso, err := Load(test.name, dir)
		require.NoError(err)
		require.Equal(test.expectedNumberChange, iso.DecayAtomicNumberChange())
		require.Equal(test.expectedMassChange, iso.DecayAtomicMassChange())

		daughter, err := iso.DaughterName()
		require.NoError(err)
		require.Equal(test.expectedDaughter, daughter)
	}
}

func TestLoadHalfLifeUnits(t *testing.T) {
	tests := []struct {
		description  string  // Test case description
		halfLifeLine string  // Half-life line in the file
		expectedRate float64 // expected result from DecayRate()
	}{
		{description: "Picoseconds", halfLifeLine: "Parent half-life: 2.0 PS (8)", expectedRate: math.Ln2 / 2.0 * 1e12},
		{description: "Nanoseconds", halfLifeLine: "Parent half-life: 2.0 NS (8)", expectedRate: math.Ln2 / 2.0 * 1e9},
		{description: "Microseconds", halfLifeLine: "Parent half-life: 2.0 US (8)", expectedRate: math.Ln2 / 2.0 * 1e6},
		{description: "Milliseconds", halfLifeLine: "Parent half-life: 2.0 MS (8)", expectedRate: math.Ln2 / 2.0 * 1e3},
		{description: "Seconds", halfLifeLine: "Parent half-life: 2.0 S (8)", expectedRate: math.Ln2 / 2.0},
		{description: "Minutes", halfLifeLine: "Parent half-life: 2.0 M (8)", expectedRate: math.Ln2 / 2.0 / 60},
		{description: "Hours", halfLifeLine: "Parent half-life: 2.0 H (8)", expectedRate: math.Ln2 / 2.0 / 3.6e3},
		{description: "Days", halfLifeLine: "Parent half-life: 2.0 D (8)", expectedRate: math.Ln2 / 2.0 / 8.64e4},
		{description: "Years", halfLifeLine: "Parent half-life: 2.0 Y (8)", expectedRate: math.Ln2 / 2.0 / 3.1536e7},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		dir := t.TempDir()
		writeDecayFile(t, dir, "Co60", test.halfLifeLine, "Decay Mode: B- 100.0")

		iso, err := Load("Co60", dir)
		require.NoError(err)
		require.InEpsilon(test.expectedRate, iso.DecayRate(), 1e-12)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		description   string // Test case description
		halfLifeLine  string // Half-life line in the file, empty to omit
		decayModeLine string // Decay mode line in the file, empty to omit
		expectedErr   error  // expected sentinel from Load()
	}{
		{
			description:   "No marker lines at all",
			halfLifeLine:  "",
			decayModeLine: "",
			expectedErr:   ErrNoDecayRate,
		},
		{
			description:   "Decay mode line without half-life line",
			halfLifeLine:  "",
			decayModeLine: "Decay Mode: B- 100.0",
			expectedErr:   ErrNoDecayRate,
		},
		{
			description:   "Unknown half-life unit",
			halfLifeLine:  "Parent half-life: 5.2714 FOO (8)",
			decayModeLine: "Decay Mode: B- 100.0",
			expectedErr:   ErrUnknownHalfLifeUnit,
		},
		{
			description:   "Missing decay mode line",
			halfLifeLine:  "Parent half-life: 5.2714 Y (8)",
			decayModeLine: "",
			expectedErr:   ErrNoDecayMode,
		},
		{
			description:   "Unknown decay mode code",
			halfLifeLine:  "Parent half-life: 5.2714 Y (8)",
			decayModeLine: "Decay Mode: SF 100.0",
			expectedErr:   ErrUnknownDecayMode,
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		dir := t.TempDir()
		writeDecayFile(t, dir, "Co60", test.halfLifeLine, test.decayModeLine)

		_, err := Load("Co60", dir)
		require.ErrorIs(err, test.expectedErr)
	}
}

func TestLoadErrorMessagesNameTheToken(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	writeDecayFile(t, dir, "Co60", "Parent half-life: 5.2714 FOO (8)", "Decay Mode: B- 100.0")
	_, err := Load("Co60", dir)
	require.ErrorContains(err, `"FOO"`)

	writeDecayFile(t, dir, "Sr90", "Parent half-life: 28.79 Y (8)", "Decay Mode: SF 100.0")
	_, err = Load("Sr90", dir)
	require.ErrorContains(err, `"SF"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("Co60", t.TempDir())
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadInvalidName(t *testing.T) {
	_, err := Load("not-an-isomer", t.TempDir())
	require.ErrorIs(t, err, nuclide.ErrInvalidName)
}

func TestLoadMetastable(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	filename := writeDecayFile(t, dir, "Co60m1",
		"Parent half-life: 10.467 M (6)",
		"Decay Mode: B- 0.24")
	require.Equal("dec-027_Co_060m1.endf", filename)

	iso, err := Load("Co60m1", dir)
	require.NoError(err)
	require.Equal(1, iso.EnergyState())
	require.InEpsilon(math.Ln2/10.467/60, iso.DecayRate(), 1e-12)

	// The daughter is always at ground state.
	daughter, err := iso.DaughterName()
	require.NoError(err)
	require.Equal("Ni60", daughter)
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	filename := writeDecayFile(t, dir, "Co60",
		"Parent half-life: 5.2714 Y (8)",
		"Decay Mode: B- 100.0")

	iso, err := LoadFile(filename, dir)
	require.NoError(err)
	require.Equal("Co60", iso.Name())
	require.False(iso.Stable())

	_, err = LoadFile("garbage", dir)
	require.ErrorIs(err, nuclide.ErrInvalidFilename)
}
