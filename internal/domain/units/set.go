package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidUnit is matched by every *InvalidUnitError.
var ErrInvalidUnit = errors.New("invalid unit")

// InvalidUnitError reports a token that is not a member of a category.
type InvalidUnitError struct {
	Category Category
	Token    string
	Valid    []string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid %s unit %q (valid: %s)", e.Category, e.Token, strings.Join(e.Valid, ", "))
}

// Is makes errors.Is(err, ErrInvalidUnit) succeed.
func (e *InvalidUnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

// Def describes one unit relative to its category's canonical unit:
//
//	canonical = (value - Offset) * Factor
//
// Offset is zero for every purely multiplicative unit. Isolated marks a
// variant that shares a category but has no scalar relation to the canonical
// unit (candela vs lumen); Factor and Offset are ignored for it.
type Def struct {
	Token    string
	Factor   float64
	Offset   float64
	Isolated bool
}

// Set is the static unit table of one category. U is the category's unit
// enum; variant i is described by defs[i] and variant 0 is canonical.
type Set[U ~uint8] struct {
	category Category
	defs     []Def
	byToken  map[string]U
}

// newSet builds a table and panics if it breaks a table invariant. Tables are
// package-level values, so a violation surfaces at init.
func newSet[U ~uint8](c Category, defs ...Def) *Set[U] {
	if err := validateDefs(c, defs); err != nil {
		panic(err)
	}
	s := &Set[U]{
		category: c,
		defs:     defs,
		byToken:  make(map[string]U, len(defs)),
	}
	for i, d := range defs {
		s.byToken[d.Token] = U(i)
	}
	return s
}

func validateDefs(c Category, defs []Def) error {
	if len(defs) == 0 {
		return fmt.Errorf("units: %s has no variants", c)
	}
	if len(defs) > math.MaxUint8+1 {
		return fmt.Errorf("units: %s has too many variants (%d)", c, len(defs))
	}
	if canon := defs[0]; canon.Factor != 1 || canon.Offset != 0 || canon.Isolated {
		return fmt.Errorf("units: %s canonical unit %q must have factor 1 and offset 0", c, canon.Token)
	}

	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.Token == "" || d.Token != strings.ToLower(d.Token) {
			return fmt.Errorf("units: %s variant %d has a non-canonical token %q", c, i, d.Token)
		}
		if seen[d.Token] {
			return fmt.Errorf("units: %s declares %q twice", c, d.Token)
		}
		seen[d.Token] = true

		if i == 0 || d.Isolated {
			continue
		}
		if !(d.Factor > 0) || math.IsInf(d.Factor, 0) {
			return fmt.Errorf("units: %s unit %q has invalid factor %v", c, d.Token, d.Factor)
		}
		if math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0) {
			return fmt.Errorf("units: %s unit %q has invalid offset %v", c, d.Token, d.Offset)
		}
		if d.Factor == 1 && d.Offset == 0 {
			return fmt.Errorf("units: %s unit %q duplicates the canonical unit", c, d.Token)
		}
	}
	return nil
}

// Category returns the category this table belongs to.
func (s *Set[U]) Category() Category { return s.category }

// Len returns the number of variants.
func (s *Set[U]) Len() int { return len(s.defs) }

// Canonical returns the reference unit every conversion is routed through.
func (s *Set[U]) Canonical() U { return 0 }

// Contains reports whether u is a declared variant.
func (s *Set[U]) Contains(u U) bool { return int(u) < len(s.defs) }

// Parse resolves a token, ignoring case.
func (s *Set[U]) Parse(token string) (U, error) {
	if u, ok := s.byToken[strings.ToLower(token)]; ok {
		return u, nil
	}
	return 0, &InvalidUnitError{Category: s.category, Token: token, Valid: s.Variants()}
}

// Token returns the canonical lowercase token of u.
func (s *Set[U]) Token(u U) string {
	if !s.Contains(u) {
		return fmt.Sprintf("%s(%d)", s.category, u)
	}
	return s.defs[u].Token
}

// Def returns the definition of u. The zero Def is returned for undeclared
// values.
func (s *Set[U]) Def(u U) Def {
	if !s.Contains(u) {
		return Def{}
	}
	return s.defs[u]
}

// Units returns every variant in declaration order.
func (s *Set[U]) Units() []U {
	out := make([]U, len(s.defs))
	for i := range out {
		out[i] = U(i)
	}
	return out
}

// Variants returns every token in declaration order. The slice is a copy.
func (s *Set[U]) Variants() []string {
	out := make([]string, len(s.defs))
	for i, d := range s.defs {
		out[i] = d.Token
	}
	return out
}
