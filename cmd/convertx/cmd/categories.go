package cmd

import (
	"github.com/corey/convertx/internal/app"
	"github.com/corey/convertx/internal/domain/convert"
	"github.com/corey/convertx/internal/domain/units"
	"github.com/spf13/cobra"
)

func linear[U ~uint8](set *units.Set[U], fn convert.Func[U]) app.Converter[U] {
	return app.Converter[U]{Units: set, Convert: fn, Style: app.StyleLinear}
}

// single builds a command for a category with exactly one unit; both flags
// default to it.
func single[U ~uint8](short string, set *units.Set[U], fn convert.Func[U]) *cobra.Command {
	only := set.Token(set.Canonical())
	return newCategoryCmd(category[U]{short: short, converter: linear(set, fn), from: only, to: only})
}

// categoryCommands returns one subcommand per units.Category, in declaration
// order.
func categoryCommands() []*cobra.Command {
	return []*cobra.Command{
		newCategoryCmd(category[units.LengthUnit]{
			short:     "Convert length units",
			converter: linear(units.LengthUnits, convert.Length),
			from:      "meters",
			to:        "feet",
		}),
		newCategoryCmd(category[units.TemperatureUnit]{
			short: "Convert temperature units",
			converter: app.Converter[units.TemperatureUnit]{
				Units:   units.TemperatureUnits,
				Convert: convert.Temperature,
				Style:   app.StyleTemperature,
			},
		}),
		newCategoryCmd(category[units.MassUnit]{
			short:     "Convert mass/weight units",
			converter: linear(units.MassUnits, convert.Mass),
		}),
		newCategoryCmd(category[units.DataRateUnit]{
			short:     "Convert data rate units",
			converter: linear(units.DataRateUnits, convert.DataRate),
		}),
		newCategoryCmd(category[units.AreaUnit]{
			short:     "Convert area units",
			converter: linear(units.AreaUnits, convert.Area),
		}),
		newCategoryCmd(category[units.VolumeUnit]{
			short:     "Convert volume units",
			converter: linear(units.VolumeUnits, convert.Volume),
		}),
		newCategoryCmd(category[units.SpeedUnit]{
			short:     "Convert speed units",
			converter: linear(units.SpeedUnits, convert.Speed),
		}),
		newCategoryCmd(category[units.PressureUnit]{
			short:     "Convert pressure units",
			converter: linear(units.PressureUnits, convert.Pressure),
		}),
		newCategoryCmd(category[units.CurrentUnit]{
			short:     "Convert electric current units",
			converter: linear(units.CurrentUnits, convert.Current),
		}),
		newCategoryCmd(category[units.EnergyUnit]{
			short:     "Convert energy units",
			converter: linear(units.EnergyUnits, convert.Energy),
		}),
		newCategoryCmd(category[units.PowerUnit]{
			short:     "Convert power units",
			converter: linear(units.PowerUnits, convert.Power),
		}),
		newCategoryCmd(category[units.FrequencyUnit]{
			short:     "Convert frequency units",
			converter: linear(units.FrequencyUnits, convert.Frequency),
		}),
		newCategoryCmd(category[units.AngleUnit]{
			short:     "Convert angle units",
			converter: linear(units.AngleUnits, convert.Angle),
		}),
		newCategoryCmd(category[units.ForceUnit]{
			short:     "Convert force units",
			converter: linear(units.ForceUnits, convert.Force),
		}),
		newCategoryCmd(category[units.LuminousUnit]{
			short:     "Luminous units (candela, lumen, lux; same-unit only)",
			converter: linear(units.LuminousUnits, convert.Luminous),
		}),
		newCategoryCmd(category[units.MagneticUnit]{
			short:     "Convert magnetic flux density units",
			converter: linear(units.MagneticUnits, convert.Magnetic),
		}),
		newCategoryCmd(category[units.RadioactivityUnit]{
			short:     "Convert radioactivity units",
			converter: linear(units.RadioactivityUnits, convert.Radioactivity),
		}),
		single("Capacitance (farads)", units.CapacitanceUnits, convert.Capacitance),
		single("Inductance (henries)", units.InductanceUnits, convert.Inductance),
		single("Conductance (siemens)", units.ConductanceUnits, convert.Conductance),
		single("Electric charge (coulombs)", units.ChargeUnits, convert.Charge),
		single("Voltage (volts)", units.VoltageUnits, convert.Voltage),
		single("Resistance (ohms)", units.ResistanceUnits, convert.Resistance),
		newCategoryCmd(category[units.IlluminanceUnit]{
			short:     "Convert illuminance units",
			converter: linear(units.IlluminanceUnits, convert.Illuminance),
		}),
		single("Amount of substance (moles)", units.AmountUnits, convert.Amount),
	}
}
