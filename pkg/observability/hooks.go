// Package observability provides hooks for instrumenting positioning.
//
// The core library stays silent: it neither logs nor reports. Consumers that
// want visibility into positioning and resize-binding activity register hooks
// at startup and receive events without the library taking a dependency on
// any logging backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myHooks{})
//	    // ... run application
//	}
//
// The layout package calls hooks as it works:
//
//	observability.Layout().OnPosition(2, "both")
package observability

import "sync"

// LayoutHooks receives events from positioning and resize binding.
type LayoutHooks interface {
	// OnPosition records one positioning pass over a target set.
	OnPosition(targets int, direction string)

	// OnBind records a new resize binding.
	OnBind(namespace, bindingID string)

	// OnUnbind records removal of a resize binding.
	OnUnbind(namespace string)

	// OnResize records a binding re-running because the viewport resized.
	OnResize(namespace string)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnPosition(int, string) {}
func (NoopLayoutHooks) OnBind(string, string)  {}
func (NoopLayoutHooks) OnUnbind(string)        {}
func (NoopLayoutHooks) OnResize(string)        {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any positioning.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op hooks. This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
