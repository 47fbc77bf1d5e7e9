package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/layout"
	"github.com/seung-lab/centerin/pkg/scene"
	"github.com/seung-lab/centerin/pkg/unit"
)

// placeCommand creates the place command for positioning a scene file.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		direction string
		top       string
		left      string
	)

	cmd := &cobra.Command{
		Use:   "place <scene.toml>",
		Short: "Center the boxes of a scene file and print their offsets",
		Long: `Center the boxes of a scene file and print their offsets.

The scene file describes one container and any number of boxes. Each box is
centered within the container and the computed top/left offsets are printed
as a table. Per-box direction and displacement from the scene can be
overridden with flags, which then apply to every box.

Displacements accept pixels ("10px", "10") or percentages of the container's
inner dimension ("25%").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(cmd.Context(), args[0], direction, top, left)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "override axis selection: horizontal, vertical, both")
	cmd.Flags().StringVar(&top, "top", "", "override vertical displacement for every box")
	cmd.Flags().StringVar(&left, "left", "", "override horizontal displacement for every box")

	return cmd
}

// runPlace loads the scene, positions every box, and prints the offsets.
func (c *CLI) runPlace(ctx context.Context, path, direction, top, left string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded scene", "path", path, "boxes", len(s.Boxes))

	rows := placeBoxes(s, direction, top, left)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Box", "Direction", "Left", "Top", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return StyleValue
		})
	fmt.Println(t)

	prog.done(fmt.Sprintf("Placed %d boxes", len(rows)))
	return nil
}

// placeBoxes builds the scene, positions every box, and returns one table
// row per box. Non-empty flag values override the per-box scene settings.
func placeBoxes(s *scene.Scene, direction, top, left string) [][]string {
	container, targets := s.Build()

	rows := make([][]string, 0, len(targets))
	for i, b := range s.Boxes {
		opts := b.Options(container)
		if direction != "" {
			opts.Direction = layout.ParseDirection(direction)
		}
		if top != "" {
			opts.Top = unit.Parse(top)
		}
		if left != "" {
			opts.Left = unit.Parse(left)
		}

		target := targets[i]
		layout.Position([]dom.Element{target}, opts)

		rows = append(rows, []string{
			boxName(b, i),
			opts.Direction.String(),
			styleOrDash(target, "left"),
			styleOrDash(target, "top"),
			target.Style("position"),
		})
	}
	return rows
}

// boxName labels a box by id, falling back to its position in the scene.
func boxName(b scene.BoxSpec, i int) string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("box %d", i+1)
}

// styleOrDash returns the written style value, or a dash for axes the
// direction skipped.
func styleOrDash(el dom.Element, prop string) string {
	if v := el.Style(prop); v != "" {
		return v
	}
	return "–"
}
