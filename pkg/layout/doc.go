// Package layout centers elements within containers.
//
// The positioner computes the offsets that visually center a target inside a
// container and writes them back as absolute-position style values. A resize
// binder keeps a target centered by re-running the same call whenever the
// viewport resizes.
//
// # Positioning
//
//	container := memdom.NewNode(400, 300)
//	target := memdom.NewNode(100, 50, memdom.WithParent(container))
//	layout.Position([]dom.Element{target}, layout.Options{})
//	// target now carries position:absolute, left:150px, top:125px
//
// Offsets center the target's full visual box (margins included) within the
// container's inner box (padding included, border excluded). Optional top and
// left displacements shift the result; they accept pixels or percentages of
// the container's corresponding inner dimension.
//
// # Resize binding
//
// Always positions once and registers a viewport resize listener that repeats
// the identical call on every resize. Bindings are recorded in a process-wide
// registry keyed by namespace, so they can be inspected and removed with
// Unbind. The namespace is derived from the first target's id attribute;
// id-less bindings share one namespace and accumulate.
package layout
