package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seung-lab/centerin/pkg/box"
	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/dom/memdom"
	"github.com/seung-lab/centerin/pkg/layout"
)

// demoCommand creates the demo command showing live recentering.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		id        string
		direction string
		boxWidth  int
		boxHeight int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Keep a box centered in the terminal while it resizes",
		Long: `Keep a box centered in the terminal while it resizes.

The terminal acts as the viewport: a standing resize binding recomputes the
box offsets every time the window size changes. Terminal cells stand in for
pixels. Press q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newDemoModel(id, layout.ParseDirection(direction), boxWidth, boxHeight)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			printSuccess("Demo finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "demo", "id attribute for the box (names the binding namespace)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "both", "axis selection: horizontal, vertical, both")
	cmd.Flags().IntVar(&boxWidth, "width", 24, "box content width in cells")
	cmd.Flags().IntVar(&boxHeight, "height", 4, "box content height in cells")

	return cmd
}

// =============================================================================
// DemoModel - Live Recentering
// =============================================================================

// demoModel is the bubbletea model for the demo command. The terminal size
// is mirrored into a memdom viewport; the standing resize binding does the
// actual repositioning.
type demoModel struct {
	viewport  *memdom.Viewport
	target    *memdom.Node
	namespace string
	ready     bool
}

// newDemoModel builds the viewport, the target box, and the standing
// binding. The box carries a one-cell border, so its outer dimensions are
// two cells larger than its content.
func newDemoModel(id string, dir layout.Direction, w, h int) demoModel {
	vp := memdom.NewViewport(0, 0)
	target := memdom.NewNode(float64(w), float64(h),
		memdom.WithID(id),
		memdom.WithBorder(box.Uniform(1)))

	layout.Always([]dom.Element{target}, vp, layout.Options{
		Container: vp,
		Direction: dir,
	})

	return demoModel{
		viewport:  vp,
		target:    target,
		namespace: layout.Namespace + "." + id,
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Firing the viewport resize re-runs the standing binding.
		m.viewport.Resize(float64(msg.Width), float64(msg.Height))
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			layout.Unbind(m.namespace)
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m demoModel) View() string {
	if !m.ready {
		return StyleDim.Render("measuring terminal...")
	}

	left := offsetCells(m.target, "left")
	top := offsetCells(m.target, "top")

	label := fmt.Sprintf("%s\n%s", styleDemoLabel.Render(m.namespace),
		StyleDim.Render(fmt.Sprintf("left %d · top %d", left, top)))
	rendered := styleDemoBox.
		Width(int(m.target.OuterWidth(false)) - 2).
		Height(int(m.target.OuterHeight(false)) - 2).
		Render(label)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	indent := strings.Repeat(" ", left)
	for i, line := range strings.Split(rendered, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// offsetCells reads a written px offset back as a cell count. Unwritten or
// degraded offsets render at the origin rather than crashing the view.
func offsetCells(el dom.Element, prop string) int {
	v := strings.TrimSuffix(el.Style(prop), "px")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || n < 0 {
		return 0
	}
	return int(n)
}
