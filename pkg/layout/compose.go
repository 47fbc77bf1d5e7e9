package layout

import "github.com/seung-lab/centerin/pkg/dom"

// Pass is one per-element positioning step. The positioner chains the
// vertical pass, the horizontal pass, and the caller's Done callback into a
// single Pass applied to each target.
type Pass func(dom.Element)

// Compose builds one Pass that invokes every item in registration order with
// the same element, ignoring return values. Arguments may be Pass values,
// bare func(dom.Element) values, or arbitrarily nested slices of either;
// nesting is flattened depth-first before composition.
//
// Leaves are not validated upfront. A leaf that is not callable panics when
// the composed Pass runs, not when it is built.
func Compose(items ...any) Pass {
	flat := flatten(items)
	return func(el dom.Element) {
		for _, item := range flat {
			switch fn := item.(type) {
			case Pass:
				fn(el)
			case func(dom.Element):
				fn(el)
			default:
				// Deferred failure for non-callable leaves.
				item.(Pass)(el)
			}
		}
	}
}

// flatten expands nested slices into a single ordered leaf list. Nil entries
// are dropped.
func flatten(items []any) []any {
	var out []any
	for _, item := range items {
		switch v := item.(type) {
		case nil:
		case []any:
			out = append(out, flatten(v)...)
		case []Pass:
			for _, p := range v {
				if p != nil {
					out = append(out, p)
				}
			}
		case []func(dom.Element):
			for _, p := range v {
				if p != nil {
					out = append(out, p)
				}
			}
		default:
			out = append(out, item)
		}
	}
	return out
}
