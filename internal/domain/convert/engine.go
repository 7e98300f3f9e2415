// Package convert is the conversion engine: one pure function per category.
//
// Multiplicative and affine categories are normalized through the category's
// canonical unit ("star" topology): from -> canonical -> to. A category with N
// units therefore needs N definitions, never N² formulas, and every path
// between two units agrees.
//
// Every function returns (value, true) on success and (0, false) for a pair
// that has no formula. from == to always returns the input unchanged.
package convert

import "github.com/corey/convertx/internal/domain/units"

// Func converts value from one unit of a category to another.
type Func[U ~uint8] func(value float64, from, to U) (float64, bool)

// toCanonical maps a value expressed in d to the canonical unit.
func toCanonical(d units.Def, value float64) float64 {
	return (value - d.Offset) * d.Factor
}

// fromCanonical maps a canonical value to d.
func fromCanonical(d units.Def, canonical float64) float64 {
	return canonical/d.Factor + d.Offset
}

// star converts through the canonical unit of s. Isolated variants only
// convert to themselves.
func star[U ~uint8](s *units.Set[U], value float64, from, to U) (float64, bool) {
	if from == to {
		return value, s.Contains(from)
	}
	if !s.Contains(from) || !s.Contains(to) {
		return 0, false
	}
	fd, td := s.Def(from), s.Def(to)
	if fd.Isolated || td.Isolated {
		return 0, false
	}
	return fromCanonical(td, toCanonical(fd, value)), true
}

// identityOnly supports from == to and nothing else.
func identityOnly[U ~uint8](s *units.Set[U], value float64, from, to U) (float64, bool) {
	if from != to || !s.Contains(from) {
		return 0, false
	}
	return value, true
}
