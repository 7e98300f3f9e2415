package units

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_StringMatchesSubcommand(t *testing.T) {
	assert.Equal(t, "length", Length.String())
	assert.Equal(t, "datarate", DataRate.String())
	assert.Equal(t, "radioactivity", Radioactivity.String())
	assert.Equal(t, "amount", Amount.String())
	assert.Equal(t, "Category(99)", Category(99).String())
}

func TestCategories_DeclarationOrder(t *testing.T) {
	all := Categories()
	require.Len(t, all, CategoryTotal)
	assert.Equal(t, Length, all[0])
	assert.Equal(t, Temperature, all[1])
	assert.Equal(t, Amount, all[len(all)-1])
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Pressure")
	require.NoError(t, err)
	assert.Equal(t, Pressure, c)

	c, err = ParseCategory(" DATARATE ")
	require.NoError(t, err)
	assert.Equal(t, DataRate, c)

	_, err = ParseCategory("weight")
	assert.Error(t, err)
}

func TestLookup_EveryCategoryHasATable(t *testing.T) {
	for _, c := range Categories() {
		tbl, ok := Lookup(c)
		require.True(t, ok, "no table for %s", c)
		assert.Equal(t, c, tbl.Category(), "table registered under the wrong category")
		assert.NotEmpty(t, tbl.Variants())
	}

	_, ok := Lookup(Category(-1))
	assert.False(t, ok)
	assert.Nil(t, Variants(Category(CategoryTotal)))
}

func TestParse_CaseInsensitive(t *testing.T) {
	for _, token := range []string{"kilometers", "KILOMETERS", "KiloMeters"} {
		u, err := LengthUnits.Parse(token)
		require.NoError(t, err, token)
		assert.Equal(t, Kilometers, u)
	}

	u, err := TemperatureUnits.Parse("F")
	require.NoError(t, err)
	assert.Equal(t, Fahrenheit, u)
}

func TestParse_InvalidUnit(t *testing.T) {
	_, err := MassUnits.Parse("stone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))

	var iu *InvalidUnitError
	require.True(t, errors.As(err, &iu))
	assert.Equal(t, Mass, iu.Category)
	assert.Equal(t, "stone", iu.Token)
	assert.Equal(t, []string{"kg", "lb", "oz"}, iu.Valid)
	assert.Equal(t, `invalid mass unit "stone" (valid: kg, lb, oz)`, err.Error())
}

func TestParse_TokenFromAnotherCategory(t *testing.T) {
	// "lux" is valid for illuminance and luminous, never for length.
	_, err := LengthUnits.Parse("lux")
	assert.ErrorIs(t, err, ErrInvalidUnit)

	l, err := LuminousUnits.Parse("lux")
	require.NoError(t, err)
	assert.Equal(t, LuminousLux, l)

	i, err := IlluminanceUnits.Parse("lux")
	require.NoError(t, err)
	assert.Equal(t, Lux, i)
}

func TestToken_RoundTrip(t *testing.T) {
	for _, u := range VolumeUnits.Units() {
		parsed, err := VolumeUnits.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
	assert.Equal(t, "cubic_meters", CubicMeters.String())
	assert.Equal(t, "psi", PSI.String())
}

func TestToken_Undeclared(t *testing.T) {
	assert.Equal(t, "length(9)", LengthUnit(9).String())
	assert.Equal(t, Def{}, LengthUnits.Def(LengthUnit(9)))
	assert.False(t, LengthUnits.Contains(LengthUnit(9)))
}

func TestVariants_OrderAndCopy(t *testing.T) {
	assert.Equal(t, []string{"meters", "feet", "inches", "kilometers"}, LengthUnits.Variants())
	assert.Equal(t, []string{"c", "f", "k"}, Variants(Temperature))
	assert.Equal(t, []string{"pa", "bar", "atm", "psi"}, PressureUnits.Variants())

	v := LengthUnits.Variants()
	v[0] = "mutated"
	assert.Equal(t, "meters", LengthUnits.Variants()[0])
}

func TestSingleUnitCategories(t *testing.T) {
	for _, c := range []Category{Capacitance, Inductance, Conductance, Charge, Voltage, Resistance, Amount} {
		assert.Len(t, Variants(c), 1, "%s should have exactly one unit", c)
	}
	assert.Equal(t, "volts", Volts.String())
	assert.Equal(t, "moles", Moles.String())
}

// checkTable asserts the table invariants directly against the defs.
func checkTable[U ~uint8](t *testing.T, s *Set[U]) {
	t.Helper()
	require.NoError(t, validateDefs(s.category, s.defs), spew.Sdump(s.defs))

	canon := s.Def(s.Canonical())
	assert.Equal(t, 1.0, canon.Factor)
	assert.Zero(t, canon.Offset)

	seen := map[string]bool{}
	for _, u := range s.Units() {
		d := s.Def(u)
		assert.False(t, seen[d.Token], "duplicate token %q in %s", d.Token, s.Category())
		seen[d.Token] = true
		assert.Equal(t, strings.ToLower(d.Token), d.Token)
		if d.Isolated {
			continue
		}
		assert.False(t, math.IsInf(d.Factor, 0) || math.IsNaN(d.Factor), "%s/%s", s.Category(), d.Token)
		assert.Greater(t, d.Factor, 0.0, "%s/%s", s.Category(), d.Token)
	}
}

func TestTables_Invariants(t *testing.T) {
	checkTable(t, LengthUnits)
	checkTable(t, TemperatureUnits)
	checkTable(t, MassUnits)
	checkTable(t, DataRateUnits)
	checkTable(t, AreaUnits)
	checkTable(t, VolumeUnits)
	checkTable(t, SpeedUnits)
	checkTable(t, PressureUnits)
	checkTable(t, CurrentUnits)
	checkTable(t, EnergyUnits)
	checkTable(t, PowerUnits)
	checkTable(t, FrequencyUnits)
	checkTable(t, AngleUnits)
	checkTable(t, ForceUnits)
	checkTable(t, LuminousUnits)
	checkTable(t, MagneticUnits)
	checkTable(t, RadioactivityUnits)
	checkTable(t, CapacitanceUnits)
	checkTable(t, InductanceUnits)
	checkTable(t, ConductanceUnits)
	checkTable(t, ChargeUnits)
	checkTable(t, VoltageUnits)
	checkTable(t, ResistanceUnits)
	checkTable(t, IlluminanceUnits)
	checkTable(t, AmountUnits)
}

func TestValidateDefs_Rejects(t *testing.T) {
	cases := map[string][]Def{
		"empty":              nil,
		"canonical factor":   {{Token: "a", Factor: 2}},
		"canonical offset":   {{Token: "a", Factor: 1, Offset: 1}},
		"uppercase token":    {{Token: "a", Factor: 1}, {Token: "B", Factor: 2}},
		"empty token":        {{Token: "a", Factor: 1}, {Token: "", Factor: 2}},
		"duplicate token":    {{Token: "a", Factor: 1}, {Token: "a", Factor: 2}},
		"zero factor":        {{Token: "a", Factor: 1}, {Token: "b"}},
		"negative factor":    {{Token: "a", Factor: 1}, {Token: "b", Factor: -1}},
		"infinite factor":    {{Token: "a", Factor: 1}, {Token: "b", Factor: math.Inf(1)}},
		"nan factor":         {{Token: "a", Factor: 1}, {Token: "b", Factor: math.NaN()}},
		"second canonical":   {{Token: "a", Factor: 1}, {Token: "b", Factor: 1}},
		"isolated canonical": {{Token: "a", Factor: 1, Isolated: true}},
	}
	for name, defs := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, validateDefs(Length, defs))
		})
	}
}

func TestNewSet_PanicsOnInvalidTable(t *testing.T) {
	assert.Panics(t, func() {
		newSet[LengthUnit](Length, Def{Token: "x", Factor: 3})
	})
}
