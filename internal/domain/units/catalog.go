package units

import "math"

// Reference constants shared by several tables.
const (
	feetPerMeter      = 3.28084
	inchesPerMeter    = 39.3701
	poundsPerKilogram = 2.20462
	ouncesPerKilogram = 35.274
	kelvinOffset      = 273.15
)

// LengthUnit is a unit of length. Canonical: meters.
type LengthUnit uint8

const (
	Meters LengthUnit = iota
	Feet
	Inches
	Kilometers
)

var LengthUnits = newSet[LengthUnit](Length,
	Def{Token: "meters", Factor: 1},
	Def{Token: "feet", Factor: 1 / feetPerMeter},
	Def{Token: "inches", Factor: 1 / inchesPerMeter},
	Def{Token: "kilometers", Factor: 1000},
)

func (u LengthUnit) String() string { return LengthUnits.Token(u) }

// TemperatureUnit is a temperature scale. Canonical: Celsius. The only
// category with offsets.
type TemperatureUnit uint8

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

var TemperatureUnits = newSet[TemperatureUnit](Temperature,
	Def{Token: "c", Factor: 1},
	Def{Token: "f", Factor: 5.0 / 9.0, Offset: 32},
	Def{Token: "k", Factor: 1, Offset: kelvinOffset},
)

func (u TemperatureUnit) String() string { return TemperatureUnits.Token(u) }

// MassUnit is a unit of mass. Canonical: kilograms.
type MassUnit uint8

const (
	Kilograms MassUnit = iota
	Pounds
	Ounces
)

var MassUnits = newSet[MassUnit](Mass,
	Def{Token: "kg", Factor: 1},
	Def{Token: "lb", Factor: 1 / poundsPerKilogram},
	Def{Token: "oz", Factor: 1 / ouncesPerKilogram},
)

func (u MassUnit) String() string { return MassUnits.Token(u) }

// DataRateUnit is a unit of data rate. Canonical: bits per second.
type DataRateUnit uint8

const (
	BitsPerSecond DataRateUnit = iota
	KilobitsPerSecond
	MegabitsPerSecond
	GigabitsPerSecond
)

var DataRateUnits = newSet[DataRateUnit](DataRate,
	Def{Token: "bps", Factor: 1},
	Def{Token: "kbps", Factor: 1e3},
	Def{Token: "mbps", Factor: 1e6},
	Def{Token: "gbps", Factor: 1e9},
)

func (u DataRateUnit) String() string { return DataRateUnits.Token(u) }

// AreaUnit is a unit of area. Canonical: square meters.
type AreaUnit uint8

const (
	SquareMeters AreaUnit = iota
	SquareFeet
	Acres
	Hectares
)

var AreaUnits = newSet[AreaUnit](Area,
	Def{Token: "sqm", Factor: 1},
	Def{Token: "sqft", Factor: 1 / 10.7639},
	Def{Token: "acres", Factor: 4046.85642},
	Def{Token: "hectares", Factor: 10000},
)

func (u AreaUnit) String() string { return AreaUnits.Token(u) }

// VolumeUnit is a unit of volume. Canonical: liters.
type VolumeUnit uint8

const (
	Liters VolumeUnit = iota
	Milliliters
	CubicMeters
	CubicInches
	Gallons
)

var VolumeUnits = newSet[VolumeUnit](Volume,
	Def{Token: "liters", Factor: 1},
	Def{Token: "milliliters", Factor: 1e-3},
	Def{Token: "cubic_meters", Factor: 1000},
	Def{Token: "cubic_inches", Factor: 1 / 61.0237},
	Def{Token: "gallons", Factor: 3.78541},
)

func (u VolumeUnit) String() string { return VolumeUnits.Token(u) }

// SpeedUnit is a unit of speed. Canonical: meters per second.
type SpeedUnit uint8

const (
	MetersPerSecond SpeedUnit = iota
	KilometersPerHour
	MilesPerHour
	Knots
)

var SpeedUnits = newSet[SpeedUnit](Speed,
	Def{Token: "mps", Factor: 1},
	Def{Token: "kph", Factor: 1 / 3.6},
	Def{Token: "mph", Factor: 0.44704},
	Def{Token: "knots", Factor: 0.514444},
)

func (u SpeedUnit) String() string { return SpeedUnits.Token(u) }

// PressureUnit is a unit of pressure. Canonical: pascals.
type PressureUnit uint8

const (
	Pascals PressureUnit = iota
	Bars
	Atmospheres
	PSI
)

var PressureUnits = newSet[PressureUnit](Pressure,
	Def{Token: "pa", Factor: 1},
	Def{Token: "bar", Factor: 1e5},
	Def{Token: "atm", Factor: 101325},
	Def{Token: "psi", Factor: 6894.76},
)

func (u PressureUnit) String() string { return PressureUnits.Token(u) }

// CurrentUnit is a unit of electric current. Canonical: amperes.
type CurrentUnit uint8

const (
	Amperes CurrentUnit = iota
	Milliamperes
	Microamperes
	Kiloamperes
)

var CurrentUnits = newSet[CurrentUnit](Current,
	Def{Token: "amperes", Factor: 1},
	Def{Token: "milliamperes", Factor: 1e-3},
	Def{Token: "microamperes", Factor: 1e-6},
	Def{Token: "kiloamperes", Factor: 1e3},
)

func (u CurrentUnit) String() string { return CurrentUnits.Token(u) }

// EnergyUnit is a unit of energy. Canonical: joules.
type EnergyUnit uint8

const (
	Joules EnergyUnit = iota
	Kilojoules
	Calories
	Kilocalories
	WattHours
	KilowattHours
	BTU
)

var EnergyUnits = newSet[EnergyUnit](Energy,
	Def{Token: "joules", Factor: 1},
	Def{Token: "kilojoules", Factor: 1e3},
	Def{Token: "calories", Factor: 4.184},
	Def{Token: "kilocalories", Factor: 4184},
	Def{Token: "wh", Factor: 3600},
	Def{Token: "kwh", Factor: 3.6e6},
	Def{Token: "btu", Factor: 1055.06},
)

func (u EnergyUnit) String() string { return EnergyUnits.Token(u) }

// PowerUnit is a unit of power. Canonical: watts.
type PowerUnit uint8

const (
	Watts PowerUnit = iota
	Kilowatts
	Megawatts
	Horsepower
)

var PowerUnits = newSet[PowerUnit](Power,
	Def{Token: "watts", Factor: 1},
	Def{Token: "kilowatts", Factor: 1e3},
	Def{Token: "megawatts", Factor: 1e6},
	Def{Token: "hp", Factor: 745.7},
)

func (u PowerUnit) String() string { return PowerUnits.Token(u) }

// FrequencyUnit is a unit of frequency. Canonical: hertz.
type FrequencyUnit uint8

const (
	Hertz FrequencyUnit = iota
	Kilohertz
	Megahertz
	Gigahertz
	RPM
)

var FrequencyUnits = newSet[FrequencyUnit](Frequency,
	Def{Token: "hz", Factor: 1},
	Def{Token: "khz", Factor: 1e3},
	Def{Token: "mhz", Factor: 1e6},
	Def{Token: "ghz", Factor: 1e9},
	Def{Token: "rpm", Factor: 1.0 / 60.0},
)

func (u FrequencyUnit) String() string { return FrequencyUnits.Token(u) }

// AngleUnit is a unit of plane angle. Canonical: degrees.
type AngleUnit uint8

const (
	Degrees AngleUnit = iota
	Radians
	Gradians
	Turns
)

var AngleUnits = newSet[AngleUnit](Angle,
	Def{Token: "degrees", Factor: 1},
	Def{Token: "radians", Factor: 180 / math.Pi},
	Def{Token: "gradians", Factor: 0.9},
	Def{Token: "turns", Factor: 360},
)

func (u AngleUnit) String() string { return AngleUnits.Token(u) }

// ForceUnit is a unit of force. Canonical: newtons.
type ForceUnit uint8

const (
	Newtons ForceUnit = iota
	Kilonewtons
	Dynes
	PoundsForce
	KilogramsForce
)

var ForceUnits = newSet[ForceUnit](Force,
	Def{Token: "newtons", Factor: 1},
	Def{Token: "kilonewtons", Factor: 1e3},
	Def{Token: "dynes", Factor: 1e-5},
	Def{Token: "lbf", Factor: 4.4482216152605},
	Def{Token: "kgf", Factor: 9.80665},
)

func (u ForceUnit) String() string { return ForceUnits.Token(u) }

// LuminousUnit names a photometric unit. Intensity, flux and illuminance
// measure different things, so only candela is related to the canonical unit
// (itself); lumen and lux are isolated.
type LuminousUnit uint8

const (
	Candela LuminousUnit = iota
	Lumens
	LuminousLux
)

var LuminousUnits = newSet[LuminousUnit](Luminous,
	Def{Token: "candela", Factor: 1},
	Def{Token: "lumen", Isolated: true},
	Def{Token: "lux", Isolated: true},
)

func (u LuminousUnit) String() string { return LuminousUnits.Token(u) }

// MagneticUnit is a unit of magnetic flux density. Canonical: tesla.
type MagneticUnit uint8

const (
	Tesla MagneticUnit = iota
	Millitesla
	Microtesla
	Gauss
)

var MagneticUnits = newSet[MagneticUnit](Magnetic,
	Def{Token: "tesla", Factor: 1},
	Def{Token: "millitesla", Factor: 1e-3},
	Def{Token: "microtesla", Factor: 1e-6},
	Def{Token: "gauss", Factor: 1e-4},
)

func (u MagneticUnit) String() string { return MagneticUnits.Token(u) }

// RadioactivityUnit is a unit of activity. Canonical: becquerels.
type RadioactivityUnit uint8

const (
	Becquerels RadioactivityUnit = iota
	Kilobecquerels
	Megabecquerels
	Curies
	Rutherfords
)

var RadioactivityUnits = newSet[RadioactivityUnit](Radioactivity,
	Def{Token: "becquerel", Factor: 1},
	Def{Token: "kilobecquerel", Factor: 1e3},
	Def{Token: "megabecquerel", Factor: 1e6},
	Def{Token: "curie", Factor: 3.7e10},
	Def{Token: "rutherford", Factor: 1e6},
)

func (u RadioactivityUnit) String() string { return RadioactivityUnits.Token(u) }

// Single-unit categories. Each enum has exactly one variant, so a cross-unit
// request cannot be expressed.

type CapacitanceUnit uint8

const Farads CapacitanceUnit = 0

var CapacitanceUnits = newSet[CapacitanceUnit](Capacitance, Def{Token: "farads", Factor: 1})

func (u CapacitanceUnit) String() string { return CapacitanceUnits.Token(u) }

type InductanceUnit uint8

const Henries InductanceUnit = 0

var InductanceUnits = newSet[InductanceUnit](Inductance, Def{Token: "henries", Factor: 1})

func (u InductanceUnit) String() string { return InductanceUnits.Token(u) }

type ConductanceUnit uint8

const Siemens ConductanceUnit = 0

var ConductanceUnits = newSet[ConductanceUnit](Conductance, Def{Token: "siemens", Factor: 1})

func (u ConductanceUnit) String() string { return ConductanceUnits.Token(u) }

type ChargeUnit uint8

const Coulombs ChargeUnit = 0

var ChargeUnits = newSet[ChargeUnit](Charge, Def{Token: "coulombs", Factor: 1})

func (u ChargeUnit) String() string { return ChargeUnits.Token(u) }

type VoltageUnit uint8

const Volts VoltageUnit = 0

var VoltageUnits = newSet[VoltageUnit](Voltage, Def{Token: "volts", Factor: 1})

func (u VoltageUnit) String() string { return VoltageUnits.Token(u) }

type ResistanceUnit uint8

const Ohms ResistanceUnit = 0

var ResistanceUnits = newSet[ResistanceUnit](Resistance, Def{Token: "ohms", Factor: 1})

func (u ResistanceUnit) String() string { return ResistanceUnits.Token(u) }

// IlluminanceUnit is a unit of illuminance. Canonical: lux.
type IlluminanceUnit uint8

const (
	Lux IlluminanceUnit = iota
	FootCandles
	Phot
)

var IlluminanceUnits = newSet[IlluminanceUnit](Illuminance,
	Def{Token: "lux", Factor: 1},
	Def{Token: "footcandles", Factor: 10.7639},
	Def{Token: "phot", Factor: 1e4},
)

func (u IlluminanceUnit) String() string { return IlluminanceUnits.Token(u) }

type AmountUnit uint8

const Moles AmountUnit = 0

var AmountUnits = newSet[AmountUnit](Amount, Def{Token: "moles", Factor: 1})

func (u AmountUnit) String() string { return AmountUnits.Token(u) }
