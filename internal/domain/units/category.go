// Package units defines the closed set of physical quantity categories and,
// for each one, the closed enumeration of unit tokens it accepts.
//
// Every category has exactly one canonical unit (variant 0). Every other
// variant is described relative to it, so conversions never need pairwise
// tables. Nothing registers units at runtime: the tables below are the whole
// vocabulary.
package units

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category identifies a physical quantity. Its String form is the CLI
// subcommand name.
type Category int

const (
	Length        Category = iota // length
	Temperature                   // temperature
	Mass                          // mass
	DataRate                      // datarate
	Area                          // area
	Volume                        // volume
	Speed                         // speed
	Pressure                      // pressure
	Current                       // current
	Energy                        // energy
	Power                         // power
	Frequency                     // frequency
	Angle                         // angle
	Force                         // force
	Luminous                      // luminous
	Magnetic                      // magnetic
	Radioactivity                 // radioactivity
	Capacitance                   // capacitance
	Inductance                    // inductance
	Conductance                   // conductance
	Charge                        // charge
	Voltage                       // voltage
	Resistance                    // resistance
	Illuminance                   // illuminance
	Amount                        // amount

	// CategoryTotal is the number of categories defined above.
	CategoryTotal = int(iota)
)

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, CategoryTotal)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory resolves a subcommand-style name, ignoring case.
func ParseCategory(name string) (Category, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories() {
		if c.String() == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < CategoryTotal
}
