package layout_test

import (
	"testing"

	"github.com/seung-lab/centerin/pkg/box"
	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/dom/memdom"
	"github.com/seung-lab/centerin/pkg/layout"
	"github.com/seung-lab/centerin/pkg/unit"
)

func TestPositionCentersBothAxes(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50, memdom.WithParent(container))

	got := layout.Position([]dom.Element{target}, layout.Options{})

	if len(got) != 1 || got[0] != target {
		t.Fatal("Position should return the input targets for chaining")
	}
	if left := target.Style("left"); left != "150px" {
		t.Errorf("left = %q, want %q", left, "150px")
	}
	if top := target.Style("top"); top != "125px" {
		t.Errorf("top = %q, want %q", top, "125px")
	}
	if pos := target.Style("position"); pos != "absolute" {
		t.Errorf("target position = %q, want %q", pos, "absolute")
	}
	if pos := container.Style("position"); pos != "relative" {
		t.Errorf("container position = %q, want %q", pos, "relative")
	}
}

func TestPositionUsesOuterBoxWithMargin(t *testing.T) {
	container := memdom.NewNode(400, 300, memdom.WithPadding(box.Uniform(10)))
	// Outer box with margin: 100+2*2+2*10 = 124 wide, 50+2*2+2*10 = 74 tall.
	target := memdom.NewNode(100, 50,
		memdom.WithParent(container),
		memdom.WithBorder(box.Uniform(2)),
		memdom.WithMargin(box.Uniform(10)))

	layout.Position([]dom.Element{target}, layout.Options{})

	// Container inner: 420x320. left = round((420-124)/2) = 148.
	if left := target.Style("left"); left != "148px" {
		t.Errorf("left = %q, want %q", left, "148px")
	}
	// top = round((320-74)/2) = 123.
	if top := target.Style("top"); top != "123px" {
		t.Errorf("top = %q, want %q", top, "123px")
	}
}

func TestPositionDirectionHorizontalOnly(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50,
		memdom.WithParent(container),
		memdom.WithStyle("top", "7px"))

	layout.Position([]dom.Element{target}, layout.Options{Direction: layout.Horizontal})

	if left := target.Style("left"); left != "150px" {
		t.Errorf("left = %q, want %q", left, "150px")
	}
	if top := target.Style("top"); top != "7px" {
		t.Errorf("top = %q, want untouched %q", top, "7px")
	}
}

func TestPositionDirectionVerticalOnly(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50, memdom.WithParent(container))

	layout.Position([]dom.Element{target}, layout.Options{Direction: layout.Vertical})

	if left := target.Style("left"); left != "" {
		t.Errorf("left = %q, want unwritten", left)
	}
	if top := target.Style("top"); top != "125px" {
		t.Errorf("top = %q, want %q", top, "125px")
	}
}

func TestPositionDisplacement(t *testing.T) {
	tests := []struct {
		name     string
		opts     layout.Options
		wantLeft string
		wantTop  string
	}{
		{
			name:     "pixel displacement",
			opts:     layout.Options{Left: unit.Px(10), Top: unit.Px(-5)},
			wantLeft: "160px",
			wantTop:  "120px",
		},
		{
			name:     "percent of container inner dimension",
			opts:     layout.Options{Left: unit.Pct(50), Top: unit.Pct(10)},
			wantLeft: "350px", // 150 + 400*0.5
			wantTop:  "155px", // 125 + 300*0.1
		},
		{
			name:     "parsed strings",
			opts:     layout.Options{Left: unit.Parse("10px"), Top: unit.Parse("25%")},
			wantLeft: "160px",
			wantTop:  "200px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := memdom.NewNode(400, 300)
			target := memdom.NewNode(100, 50, memdom.WithParent(container))

			layout.Position([]dom.Element{target}, tt.opts)

			if left := target.Style("left"); left != tt.wantLeft {
				t.Errorf("left = %q, want %q", left, tt.wantLeft)
			}
			if top := target.Style("top"); top != tt.wantTop {
				t.Errorf("top = %q, want %q", top, tt.wantTop)
			}
		})
	}
}

func TestPositionRoundsBaseBeforeDisplacement(t *testing.T) {
	// Base centering term (301-50)/2 = 125.5 rounds to 126; the fractional
	// displacement is added afterwards, raw.
	container := memdom.NewNode(400, 301)
	target := memdom.NewNode(100, 50, memdom.WithParent(container))

	layout.Position([]dom.Element{target}, layout.Options{Top: unit.Px(0.25)})

	if top := target.Style("top"); top != "126.25px" {
		t.Errorf("top = %q, want %q", top, "126.25px")
	}
}

func TestPositionMalformedDisplacementDegrades(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50, memdom.WithParent(container))

	layout.Position([]dom.Element{target}, layout.Options{Left: unit.Parse("abc")})

	if left := target.Style("left"); left != "NaNpx" {
		t.Errorf("left = %q, want degraded %q", left, "NaNpx")
	}
	// The vertical axis is unaffected by the broken horizontal displacement.
	if top := target.Style("top"); top != "125px" {
		t.Errorf("top = %q, want %q", top, "125px")
	}
}

func TestPositionFixedTargetKeepsMode(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50,
		memdom.WithParent(container),
		memdom.WithStyle("position", "fixed"))

	layout.Position([]dom.Element{target}, layout.Options{})

	if pos := target.Style("position"); pos != "fixed" {
		t.Errorf("position = %q, want fixed preserved", pos)
	}
	if left := target.Style("left"); left != "150px" {
		t.Errorf("left = %q, want %q", left, "150px")
	}
}

func TestPositionContainerModePreserved(t *testing.T) {
	for _, pos := range []string{"relative", "absolute", "fixed"} {
		container := memdom.NewNode(400, 300, memdom.WithStyle("position", pos))
		target := memdom.NewNode(100, 50, memdom.WithParent(container))

		layout.Position([]dom.Element{target}, layout.Options{})

		if got := container.Style("position"); got != pos {
			t.Errorf("container position = %q, want %q preserved", got, pos)
		}
	}
}

func TestPositionExplicitContainer(t *testing.T) {
	parent := memdom.NewNode(999, 999)
	container := memdom.NewNode(200, 100)
	target := memdom.NewNode(50, 20, memdom.WithParent(parent))

	layout.Position([]dom.Element{target}, layout.Options{Container: container})

	// Centered against the explicit container, not the parent.
	if left := target.Style("left"); left != "75px" {
		t.Errorf("left = %q, want %q", left, "75px")
	}
	if top := target.Style("top"); top != "40px" {
		t.Errorf("top = %q, want %q", top, "40px")
	}
	if pos := parent.Style("position"); pos != "" {
		t.Errorf("parent position = %q, want untouched", pos)
	}
}

func TestPositionViewportContainerNotRestyled(t *testing.T) {
	// A viewport is a bare container: it is measured but never restyled, and
	// the call must not fail over it.
	vp := memdom.NewViewport(800, 600)
	target := memdom.NewNode(100, 50)

	layout.Position([]dom.Element{target}, layout.Options{Container: vp})

	if left := target.Style("left"); left != "350px" {
		t.Errorf("left = %q, want %q", left, "350px")
	}
	if top := target.Style("top"); top != "275px" {
		t.Errorf("top = %q, want %q", top, "275px")
	}
}

func TestPositionIdempotent(t *testing.T) {
	container := memdom.NewNode(400, 300)
	target := memdom.NewNode(100, 50, memdom.WithParent(container))
	opts := layout.Options{Left: unit.Pct(10)}

	layout.Position([]dom.Element{target}, opts)
	left1, top1 := target.Style("left"), target.Style("top")

	layout.Position([]dom.Element{target}, opts)
	if left2 := target.Style("left"); left2 != left1 {
		t.Errorf("second run left = %q, first = %q", left2, left1)
	}
	if top2 := target.Style("top"); top2 != top1 {
		t.Errorf("second run top = %q, first = %q", top2, top1)
	}
}

func TestPositionMultipleTargetsIndependent(t *testing.T) {
	container := memdom.NewNode(400, 300)
	small := memdom.NewNode(100, 50, memdom.WithParent(container))
	large := memdom.NewNode(200, 100, memdom.WithParent(container))

	layout.Position([]dom.Element{small, large}, layout.Options{})

	if left := small.Style("left"); left != "150px" {
		t.Errorf("small left = %q, want %q", left, "150px")
	}
	if left := large.Style("left"); left != "100px" {
		t.Errorf("large left = %q, want %q", left, "100px")
	}
}

func TestPositionDoneCallback(t *testing.T) {
	container := memdom.NewNode(400, 300)
	a := memdom.NewNode(100, 50, memdom.WithParent(container))
	b := memdom.NewNode(100, 50, memdom.WithParent(container))

	var seen []dom.Element
	layout.Position([]dom.Element{a, b}, layout.Options{
		Done: func(el dom.Element) {
			// Offsets are already written when the callback runs.
			if el.Style("left") == "" || el.Style("top") == "" {
				t.Error("callback ran before offsets were written")
			}
			seen = append(seen, el)
		},
	})

	if len(seen) != 2 || seen[0] != a || seen[1] != b {
		t.Errorf("callback saw %d elements, want both targets in order", len(seen))
	}
}

func TestPositionEmptyAndDetached(t *testing.T) {
	if got := layout.Position(nil, layout.Options{}); got != nil {
		t.Error("Position(nil) should return nil")
	}

	// A detached target with no explicit container is a no-op.
	detached := memdom.NewNode(10, 10)
	layout.Position([]dom.Element{detached}, layout.Options{})
	if left := detached.Style("left"); left != "" {
		t.Errorf("detached target left = %q, want unwritten", left)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want layout.Direction
	}{
		{"horizontal", layout.Horizontal},
		{"vertical", layout.Vertical},
		{"both", layout.Both},
		{"HORIZONTAL", layout.Horizontal},
		{" vertical ", layout.Vertical},
		{"diagonal", layout.Both}, // unrecognized falls back
		{"", layout.Both},
	}

	for _, tt := range tests {
		if got := layout.ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if layout.Both.String() != "both" || layout.Horizontal.String() != "horizontal" || layout.Vertical.String() != "vertical" {
		t.Error("Direction.String() should name the axis selection")
	}
}
