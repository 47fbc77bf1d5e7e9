// Package dom defines the host abstraction the positioner works against.
//
// The library does not talk to a real browser. It positions anything that can
// answer box-model queries and accept style writes. Two capability levels
// exist:
//
//   - Container: something with measurable inner dimensions. Every positioning
//     call resolves exactly one container.
//   - Element: a Container that is also stylable and attributed. Targets must
//     be Elements; containers need not be.
//
// A Viewport is a Container that additionally dispatches resize events. It is
// deliberately not an Element: whether a container supports positioning is an
// interface assertion, not a caught failure. Centering against a viewport
// therefore skips the container's position upgrade without any error path.
package dom

// Container is anything with measurable inner dimensions. Inner dimensions
// include padding but exclude border and scrollbar.
type Container interface {
	InnerWidth() float64
	InnerHeight() float64
}

// Element is a stylable node in the host tree.
//
// Outer dimensions include padding and border; when margin is true they also
// include margin, which is what centering uses so the full visual box lands
// in the middle.
type Element interface {
	Container

	OuterWidth(margin bool) float64
	OuterHeight(margin bool) float64

	// Style returns the current value of an inline style property, or the
	// empty string when unset.
	Style(prop string) string
	SetStyle(prop, value string)

	// Attr returns a node attribute and whether it is present.
	Attr(name string) (string, bool)

	// Parent returns the enclosing container, or nil for a detached node.
	Parent() Container
}

// Viewport is a resizable top-level container. Listeners are keyed by
// namespace so independent bindings can be told apart and removed
// individually.
type Viewport interface {
	Container

	// OnResize registers fn under the given namespace. Multiple
	// registrations under the same namespace all fire; removal by namespace
	// drops them together.
	OnResize(namespace string, fn func())

	// RemoveResize drops every listener registered under namespace.
	RemoveResize(namespace string)
}
