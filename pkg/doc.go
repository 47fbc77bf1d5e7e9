// Package pkg provides the core libraries for centerin.
//
// # Overview
//
// Centerin positions elements relative to a container by computing the
// offsets that visually center them, writing the result back as
// absolute-position style values, and optionally re-applying the computation
// whenever the viewport resizes. The pkg directory is organized as:
//
//  1. [layout] - The positioner, resize binder, and pass composer
//  2. [unit] - Displacement normalization (pixels, percentages)
//  3. [dom] - The host abstraction (containers, elements, viewports)
//  4. [dom/memdom] - In-memory host used by the CLI and tests
//  5. [box] - Geometry primitives (sizes, insets)
//  6. [scene] - TOML scene files for the CLI
//
// # Quick Start
//
// Center a box in its parent:
//
//	import (
//	    "github.com/seung-lab/centerin/pkg/dom"
//	    "github.com/seung-lab/centerin/pkg/dom/memdom"
//	    "github.com/seung-lab/centerin/pkg/layout"
//	)
//
//	container := memdom.NewNode(400, 300)
//	target := memdom.NewNode(100, 50, memdom.WithParent(container))
//	layout.Position([]dom.Element{target}, layout.Options{})
//
// Keep it centered across viewport resizes:
//
//	vp := memdom.NewViewport(800, 600)
//	layout.Always([]dom.Element{target}, vp, layout.Options{Container: vp})
//
// # Supporting Packages
//
// [errors] - Coded errors for the tool boundary (scene loading, CLI).
//
// [observability] - Optional hooks receiving positioning and binding events.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// [layout]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/layout
// [unit]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/unit
// [dom]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/dom
// [dom/memdom]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/dom/memdom
// [box]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/box
// [scene]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/scene
// [errors]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/errors
// [observability]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/seung-lab/centerin/pkg/buildinfo
package pkg
