// Package memdom is an in-memory implementation of the dom interfaces.
//
// It backs the CLI, the demo, and the test suite with a minimal box model:
// every node has a content size plus padding, border, and margin insets.
// Inner and outer dimensions follow the usual conventions — inner is content
// plus padding; outer is content plus padding plus border, optionally plus
// margin.
package memdom

import (
	"sync"

	"github.com/seung-lab/centerin/pkg/box"
	"github.com/seung-lab/centerin/pkg/dom"
)

// =============================================================================
// Node
// =============================================================================

// Node is an in-memory element with a box model, inline styles, and
// attributes.
type Node struct {
	content box.Size
	padding box.Insets
	border  box.Insets
	margin  box.Insets

	parent dom.Container
	styles map[string]string
	attrs  map[string]string
}

// Option configures a Node at construction time.
type Option func(*Node)

// WithPadding sets the node's padding insets.
func WithPadding(i box.Insets) Option {
	return func(n *Node) { n.padding = i }
}

// WithBorder sets the node's border insets.
func WithBorder(i box.Insets) Option {
	return func(n *Node) { n.border = i }
}

// WithMargin sets the node's margin insets.
func WithMargin(i box.Insets) Option {
	return func(n *Node) { n.margin = i }
}

// WithParent attaches the node to a container.
func WithParent(c dom.Container) Option {
	return func(n *Node) { n.parent = c }
}

// WithID sets the node's id attribute.
func WithID(id string) Option {
	return func(n *Node) { n.attrs["id"] = id }
}

// WithStyle presets an inline style property.
func WithStyle(prop, value string) Option {
	return func(n *Node) { n.styles[prop] = value }
}

// NewNode creates a node with the given content size.
func NewNode(w, h float64, opts ...Option) *Node {
	n := &Node{
		content: box.Size{W: w, H: h},
		styles:  make(map[string]string),
		attrs:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// InnerWidth returns content width plus horizontal padding.
func (n *Node) InnerWidth() float64 {
	return n.content.W + n.padding.Horizontal()
}

// InnerHeight returns content height plus vertical padding.
func (n *Node) InnerHeight() float64 {
	return n.content.H + n.padding.Vertical()
}

// OuterWidth returns content width plus padding and border, plus margin when
// requested.
func (n *Node) OuterWidth(margin bool) float64 {
	w := n.content.W + n.padding.Horizontal() + n.border.Horizontal()
	if margin {
		w += n.margin.Horizontal()
	}
	return w
}

// OuterHeight returns content height plus padding and border, plus margin
// when requested.
func (n *Node) OuterHeight(margin bool) float64 {
	h := n.content.H + n.padding.Vertical() + n.border.Vertical()
	if margin {
		h += n.margin.Vertical()
	}
	return h
}

// Style returns the inline style property, or "" when unset.
func (n *Node) Style(prop string) string {
	return n.styles[prop]
}

// SetStyle writes an inline style property.
func (n *Node) SetStyle(prop, value string) {
	n.styles[prop] = value
}

// Attr returns a node attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr writes a node attribute.
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
}

// Parent returns the node's container, or nil when detached.
func (n *Node) Parent() dom.Container {
	return n.parent
}

// Resize replaces the node's content size. Styles and attributes are
// untouched.
func (n *Node) Resize(w, h float64) {
	n.content = box.Size{W: w, H: h}
}

// =============================================================================
// Viewport
// =============================================================================

// Viewport is a resizable top-level container that dispatches resize events
// synchronously to its listeners, in registration order.
type Viewport struct {
	mu        sync.Mutex
	size      box.Size
	listeners []viewportListener
}

type viewportListener struct {
	namespace string
	fn        func()
}

// NewViewport creates a viewport with the given inner dimensions.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{size: box.Size{W: w, H: h}}
}

// InnerWidth returns the viewport width.
func (v *Viewport) InnerWidth() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size.W
}

// InnerHeight returns the viewport height.
func (v *Viewport) InnerHeight() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size.H
}

// OnResize registers fn under namespace. Repeated registrations accumulate.
func (v *Viewport) OnResize(namespace string, fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, viewportListener{namespace: namespace, fn: fn})
}

// RemoveResize drops every listener registered under namespace.
func (v *Viewport) RemoveResize(namespace string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.listeners[:0]
	for _, l := range v.listeners {
		if l.namespace != namespace {
			kept = append(kept, l)
		}
	}
	v.listeners = kept
}

// ListenerCount returns the number of registered listeners. Useful in tests.
func (v *Viewport) ListenerCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// Resize updates the viewport dimensions and fires every listener in
// registration order. Dispatch is synchronous: Resize returns after the last
// listener has run.
func (v *Viewport) Resize(w, h float64) {
	v.mu.Lock()
	v.size = box.Size{W: w, H: h}
	fns := make([]func(), len(v.listeners))
	for i, l := range v.listeners {
		fns[i] = l.fn
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
