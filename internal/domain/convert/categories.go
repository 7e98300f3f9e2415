package convert

import "github.com/corey/convertx/internal/domain/units"

// Length converts through meters.
func Length(value float64, from, to units.LengthUnit) (float64, bool) {
	return star(units.LengthUnits, value, from, to)
}

// Temperature converts through Celsius. F and K are affine:
//
//	C = (F - 32) * 5/9    F = C * 9/5 + 32
//	C = K - 273.15        K = C + 273.15
func Temperature(value float64, from, to units.TemperatureUnit) (float64, bool) {
	return star(units.TemperatureUnits, value, from, to)
}

// Mass converts through kilograms.
func Mass(value float64, from, to units.MassUnit) (float64, bool) {
	return star(units.MassUnits, value, from, to)
}

// DataRate converts through bits per second.
func DataRate(value float64, from, to units.DataRateUnit) (float64, bool) {
	return star(units.DataRateUnits, value, from, to)
}

// Area converts through square meters.
func Area(value float64, from, to units.AreaUnit) (float64, bool) {
	return star(units.AreaUnits, value, from, to)
}

// Volume converts through liters.
func Volume(value float64, from, to units.VolumeUnit) (float64, bool) {
	return star(units.VolumeUnits, value, from, to)
}

// Speed converts through meters per second.
func Speed(value float64, from, to units.SpeedUnit) (float64, bool) {
	return star(units.SpeedUnits, value, from, to)
}

// Pressure converts through pascals.
func Pressure(value float64, from, to units.PressureUnit) (float64, bool) {
	return star(units.PressureUnits, value, from, to)
}

func Current(value float64, from, to units.CurrentUnit) (float64, bool) {
	return star(units.CurrentUnits, value, from, to)
}

func Energy(value float64, from, to units.EnergyUnit) (float64, bool) {
	return star(units.EnergyUnits, value, from, to)
}

func Power(value float64, from, to units.PowerUnit) (float64, bool) {
	return star(units.PowerUnits, value, from, to)
}

func Frequency(value float64, from, to units.FrequencyUnit) (float64, bool) {
	return star(units.FrequencyUnits, value, from, to)
}

func Angle(value float64, from, to units.AngleUnit) (float64, bool) {
	return star(units.AngleUnits, value, from, to)
}

func Force(value float64, from, to units.ForceUnit) (float64, bool) {
	return star(units.ForceUnits, value, from, to)
}

// Luminous only converts a unit to itself. Candela, lumen and lux are related
// by solid angle and area, which a scalar request does not carry.
func Luminous(value float64, from, to units.LuminousUnit) (float64, bool) {
	return identityOnly(units.LuminousUnits, value, from, to)
}

func Magnetic(value float64, from, to units.MagneticUnit) (float64, bool) {
	return star(units.MagneticUnits, value, from, to)
}

func Radioactivity(value float64, from, to units.RadioactivityUnit) (float64, bool) {
	return star(units.RadioactivityUnits, value, from, to)
}

func Illuminance(value float64, from, to units.IlluminanceUnit) (float64, bool) {
	return star(units.IlluminanceUnits, value, from, to)
}

// Single-unit categories. The enum has one variant, so from == to always.

func Capacitance(value float64, from, to units.CapacitanceUnit) (float64, bool) {
	return identityOnly(units.CapacitanceUnits, value, from, to)
}

func Inductance(value float64, from, to units.InductanceUnit) (float64, bool) {
	return identityOnly(units.InductanceUnits, value, from, to)
}

func Conductance(value float64, from, to units.ConductanceUnit) (float64, bool) {
	return identityOnly(units.ConductanceUnits, value, from, to)
}

func Charge(value float64, from, to units.ChargeUnit) (float64, bool) {
	return identityOnly(units.ChargeUnits, value, from, to)
}

func Voltage(value float64, from, to units.VoltageUnit) (float64, bool) {
	return identityOnly(units.VoltageUnits, value, from, to)
}

func Resistance(value float64, from, to units.ResistanceUnit) (float64, bool) {
	return identityOnly(units.ResistanceUnits, value, from, to)
}

func Amount(value float64, from, to units.AmountUnit) (float64, bool) {
	return identityOnly(units.AmountUnits, value, from, to)
}
