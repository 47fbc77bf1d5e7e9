package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/observability"
	"github.com/seung-lab/centerin/pkg/unit"
)

// =============================================================================
// Direction
// =============================================================================

// Direction selects which axes the positioner computes.
type Direction int

const (
	// Both computes horizontal and vertical offsets. It is the zero value.
	Both Direction = iota

	// Horizontal computes only the left offset.
	Horizontal

	// Vertical computes only the top offset.
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "both"
	}
}

// ParseDirection interprets a direction name. Unrecognized values behave as
// Both rather than erroring.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal
	case "vertical":
		return Vertical
	default:
		return Both
	}
}

// =============================================================================
// Options
// =============================================================================

// Options configures a positioning call.
type Options struct {
	// Container is the reference box the targets are centered within. When
	// nil, the first target's parent is used.
	Container dom.Container

	// Direction selects the computed axes. The zero value is Both.
	Direction Direction

	// Top and Left are displacements added to the centered offsets.
	Top  unit.Length
	Left unit.Length

	// Done, when set, runs once per target after its offsets are written.
	Done func(dom.Element)
}

// =============================================================================
// Positioner
// =============================================================================

// Position centers each target within the resolved container and returns the
// input slice for chaining.
//
// Per target the vertical pass runs before the horizontal pass, then Done.
// Each pass forces the target to position:absolute unless it is already
// fixed, and writes the computed offset as a px style value. The container
// itself is upgraded from static to relative when it is stylable; viewports
// and other bare containers are measured but never restyled.
func Position(targets []dom.Element, opts Options) []dom.Element {
	if len(targets) == 0 {
		return targets
	}

	container := opts.Container
	if container == nil {
		container = targets[0].Parent()
	}
	if container == nil {
		return targets
	}

	// The container forms the coordinate origin for the written offsets, so
	// it must be positioned itself. Only stylable containers qualify.
	if el, ok := container.(dom.Element); ok {
		if pos := el.Style("position"); pos == "" || pos == "static" {
			el.SetStyle("position", "relative")
		}
	}

	var passes []any
	if opts.Direction == Both || opts.Direction == Vertical {
		passes = append(passes, verticalPass(container, opts.Top))
	}
	if opts.Direction == Both || opts.Direction == Horizontal {
		passes = append(passes, horizontalPass(container, opts.Left))
	}
	if opts.Done != nil {
		passes = append(passes, Pass(opts.Done))
	}

	apply := Compose(passes...)
	for _, target := range targets {
		apply(target)
	}

	observability.Layout().OnPosition(len(targets), opts.Direction.String())
	return targets
}

// verticalPass centers one element vertically. The base centering term is
// rounded before the raw displacement is added; the asymmetry is part of the
// contract and changes sub-pixel results when the displacement is fractional.
func verticalPass(c dom.Container, top unit.Length) Pass {
	return func(el dom.Element) {
		base := math.Round((c.InnerHeight() - el.OuterHeight(true)) / 2)
		ensurePositioned(el)
		el.SetStyle("top", px(base+top.Resolve(c.InnerHeight())))
	}
}

// horizontalPass centers one element horizontally.
func horizontalPass(c dom.Container, left unit.Length) Pass {
	return func(el dom.Element) {
		base := math.Round((c.InnerWidth() - el.OuterWidth(true)) / 2)
		ensurePositioned(el)
		el.SetStyle("left", px(base+left.Resolve(c.InnerWidth())))
	}
}

// ensurePositioned forces absolute positioning. Fixed elements keep their
// viewport-relative semantics untouched.
func ensurePositioned(el dom.Element) {
	if el.Style("position") != "fixed" {
		el.SetStyle("position", "absolute")
	}
}

// px formats an offset as a pixel style value. Integral offsets render
// without a fraction; NaN from a malformed displacement renders as NaNpx,
// the documented degradation for broken input.
func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
