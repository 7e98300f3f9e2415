// Package app turns a parsed request into the single line convertx prints.
// It owns the identity short-circuit and the per-category output templates;
// the arithmetic lives in internal/domain/convert.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/corey/convertx/internal/ctxlog"
	"github.com/corey/convertx/internal/domain/convert"
	"github.com/corey/convertx/internal/domain/units"
)

// Style selects the output template of a category.
type Style int

const (
	// StyleLinear prints "1.0000 kilometers = 1000.0000 meters".
	StyleLinear Style = iota
	// StyleTemperature prints "32.00°F = 0.00°C".
	StyleTemperature
)

// Request is one conversion, built once per invocation.
type Request[U ~uint8] struct {
	Value float64
	From  U
	To    U
}

// Result is a converted value, or Supported == false when the engine has no
// formula for the pair.
type Result struct {
	Value     float64
	Supported bool
}

// Converter binds a category's unit table, engine function and template.
type Converter[U ~uint8] struct {
	Units   *units.Set[U]
	Convert convert.Func[U]
	Style   Style
}

// Do runs the conversion. Identical units return the input untouched without
// calling the engine.
func (c Converter[U]) Do(ctx context.Context, req Request[U]) Result {
	log := ctxlog.FromContext(ctx).With(
		"category", c.Units.Category().String(),
		"from", c.Units.Token(req.From),
		"to", c.Units.Token(req.To),
	)

	if req.From == req.To {
		log.Debug("identity conversion", "value", req.Value)
		return Result{Value: req.Value, Supported: true}
	}

	v, ok := c.Convert(req.Value, req.From, req.To)
	if !ok {
		log.Info("unsupported conversion")
		return Result{}
	}
	log.Debug("converted", "value", req.Value, "result", v)
	return Result{Value: v, Supported: true}
}

// Format renders req and its result with the category template.
func (c Converter[U]) Format(req Request[U], res Result) string {
	from, to := c.Units.Token(req.From), c.Units.Token(req.To)
	if !res.Supported {
		return Unsupported(from, to)
	}

	switch c.Style {
	case StyleTemperature:
		return fmt.Sprintf("%.2f°%s = %.2f°%s", req.Value, strings.ToUpper(from), res.Value, strings.ToUpper(to))
	default:
		return fmt.Sprintf("%.4f %s = %.4f %s", req.Value, from, res.Value, to)
	}
}

// Run converts and formats in one step.
func (c Converter[U]) Run(ctx context.Context, req Request[U]) string {
	return c.Format(req, c.Do(ctx, req))
}

// Unsupported is the sentence printed for a pair without a formula.
func Unsupported(from, to string) string {
	return fmt.Sprintf("Conversion from %s to %s is not directly supported.", from, to)
}
