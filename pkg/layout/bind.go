package layout

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/seung-lab/centerin/pkg/dom"
	"github.com/seung-lab/centerin/pkg/observability"
)

// Namespace is the event namespace prefix for resize bindings. A binding
// whose first target carries an id attribute is registered under
// "centerin.<id>"; id-less bindings share the bare prefix.
const Namespace = "centerin"

// Binding records one standing resize binding.
type Binding struct {
	// ID uniquely identifies this binding.
	ID string

	// Namespace is the viewport listener namespace the binding registered
	// under.
	Namespace string

	viewport dom.Viewport
}

var (
	bindMu   sync.Mutex
	bindings = make(map[string][]Binding)
)

// Always positions the targets once and keeps them positioned: every resize
// of vp re-runs the identical Position call, using the viewport dimensions
// current at fire time. Returns the input slice for chaining.
//
// Repeated calls for targets sharing an id replace nothing and remove
// nothing; they register additional listeners under the same namespace.
// Callers wanting a single live binding should Unbind first.
func Always(targets []dom.Element, vp dom.Viewport, opts Options) []dom.Element {
	Position(targets, opts)
	if vp == nil || len(targets) == 0 {
		return targets
	}

	ns := Namespace
	if id, ok := targets[0].Attr("id"); ok && id != "" {
		ns = Namespace + "." + id
	}

	b := Binding{ID: uuid.NewString(), Namespace: ns, viewport: vp}
	bindMu.Lock()
	bindings[ns] = append(bindings[ns], b)
	bindMu.Unlock()

	vp.OnResize(ns, func() {
		observability.Layout().OnResize(ns)
		Position(targets, opts)
	})

	observability.Layout().OnBind(ns, b.ID)
	return targets
}

// Unbind removes every binding registered under namespace, detaching its
// viewport listeners. Reports whether anything was removed.
func Unbind(namespace string) bool {
	bindMu.Lock()
	removed := bindings[namespace]
	delete(bindings, namespace)
	bindMu.Unlock()

	if len(removed) == 0 {
		return false
	}
	for _, b := range removed {
		b.viewport.RemoveResize(namespace)
	}
	observability.Layout().OnUnbind(namespace)
	return true
}

// Bindings returns a snapshot of the live bindings, ordered by namespace.
func Bindings() []Binding {
	bindMu.Lock()
	defer bindMu.Unlock()

	var out []Binding
	for _, bs := range bindings {
		out = append(out, bs...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Namespace != out[j].Namespace {
			return out[i].Namespace < out[j].Namespace
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ResetBindings removes every live binding. This is primarily useful for
// testing.
func ResetBindings() {
	bindMu.Lock()
	all := bindings
	bindings = make(map[string][]Binding)
	bindMu.Unlock()

	for ns, bs := range all {
		for _, b := range bs {
			b.viewport.RemoveResize(ns)
		}
	}
}
