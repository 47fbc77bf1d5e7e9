// Package scene loads TOML scene descriptions for the CLI.
//
// A scene is one container and any number of boxes to center within it:
//
//	[container]
//	width = 400
//	height = 300
//	padding = 10
//
//	[[box]]
//	id = "dialog"
//	width = 100
//	height = 50
//	margin = 5
//	left = "10px"
//	top = "25%"
//
// Build materializes the scene as in-memory nodes ready for positioning.
// Displacement strings go through the displacement normalizer, so malformed
// values degrade to NaN offsets instead of failing the load; structural
// problems (missing sizes, no boxes) are reported as coded errors.
package scene

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/seung-lab/centerin/pkg/box"
	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/dom/memdom"
	"github.com/seung-lab/centerin/pkg/errors"
	"github.com/seung-lab/centerin/pkg/layout"
	"github.com/seung-lab/centerin/pkg/unit"
)

// Scene is a parsed scene file.
type Scene struct {
	Container ContainerSpec `toml:"container"`
	Boxes     []BoxSpec     `toml:"box"`
}

// ContainerSpec describes the reference container.
type ContainerSpec struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
	Border  float64 `toml:"border"`
}

// BoxSpec describes one box to center.
type BoxSpec struct {
	ID     string  `toml:"id"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
	Border float64 `toml:"border"`

	// Direction selects the computed axes: "horizontal", "vertical", or
	// "both". Empty or unrecognized values behave as "both".
	Direction string `toml:"direction"`

	// Top and Left are displacement strings ("10px", "25%", "10").
	Top  string `toml:"top"`
	Left string `toml:"left"`
}

// Options translates the box spec into positioning options against the given
// container.
func (b BoxSpec) Options(c dom.Container) layout.Options {
	opts := layout.Options{
		Container: c,
		Direction: layout.ParseDirection(b.Direction),
	}
	if b.Top != "" {
		opts.Top = unit.Parse(b.Top)
	}
	if b.Left != "" {
		opts.Left = unit.Parse(b.Left)
	}
	return opts
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open scene %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a scene from TOML and validates its structure.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Container.Width <= 0 || s.Container.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "container needs a positive width and height")
	}
	if len(s.Boxes) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene has no boxes")
	}
	for i, b := range s.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			name := b.ID
			if name == "" {
				name = "box"
			}
			return errors.New(errors.ErrCodeInvalidScene, "%s #%d needs a positive width and height", name, i+1)
		}
	}
	return nil
}

// Build materializes the scene: one container node and one target node per
// box, parented to the container.
func (s *Scene) Build() (*memdom.Node, []dom.Element) {
	container := memdom.NewNode(s.Container.Width, s.Container.Height,
		memdom.WithPadding(box.Uniform(s.Container.Padding)),
		memdom.WithBorder(box.Uniform(s.Container.Border)))

	targets := make([]dom.Element, 0, len(s.Boxes))
	for _, b := range s.Boxes {
		opts := []memdom.Option{
			memdom.WithParent(container),
			memdom.WithMargin(box.Uniform(b.Margin)),
			memdom.WithBorder(box.Uniform(b.Border)),
		}
		if b.ID != "" {
			opts = append(opts, memdom.WithID(b.ID))
		}
		targets = append(targets, memdom.NewNode(b.Width, b.Height, opts...))
	}
	return container, targets
}
