package units

// Table is the category-erased view of a Set, used where the concrete unit
// type does not matter (listings, completion).
type Table interface {
	Category() Category
	Len() int
	Variants() []string
}

var catalog = [CategoryTotal]Table{
	Length:        LengthUnits,
	Temperature:   TemperatureUnits,
	Mass:          MassUnits,
	DataRate:      DataRateUnits,
	Area:          AreaUnits,
	Volume:        VolumeUnits,
	Speed:         SpeedUnits,
	Pressure:      PressureUnits,
	Current:       CurrentUnits,
	Energy:        EnergyUnits,
	Power:         PowerUnits,
	Frequency:     FrequencyUnits,
	Angle:         AngleUnits,
	Force:         ForceUnits,
	Luminous:      LuminousUnits,
	Magnetic:      MagneticUnits,
	Radioactivity: RadioactivityUnits,
	Capacitance:   CapacitanceUnits,
	Inductance:    InductanceUnits,
	Conductance:   ConductanceUnits,
	Charge:        ChargeUnits,
	Voltage:       VoltageUnits,
	Resistance:    ResistanceUnits,
	Illuminance:   IlluminanceUnits,
	Amount:        AmountUnits,
}

// Lookup returns the unit table for c.
func Lookup(c Category) (Table, bool) {
	if !c.Valid() {
		return nil, false
	}
	t := catalog[c]
	return t, t != nil
}

// Variants lists the tokens of c in declaration order, or nil for an
// undeclared category. The first token is the canonical unit.
func Variants(c Category) []string {
	t, ok := Lookup(c)
	if !ok {
		return nil
	}
	return t.Variants()
}
