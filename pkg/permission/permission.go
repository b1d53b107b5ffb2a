// Package permission gates which operations a toolkit exposes.
//
// An operation declares the (product, action) pairs that grant it. It is
// reachable when ANY listed pair is enabled in the caller's configuration.
// Product and action names compare case-insensitively because configuration
// loaders fold keys to lower case.
package permission

import "strings"

// Actions maps product area -> action name -> enabled.
type Actions map[string]map[string]bool

// Gated is implemented by anything that declares the actions granting it.
type Gated interface {
	RequiredActions() Actions
}

// Enabled reports whether the action of the product is switched on.
func (a Actions) Enabled(product, action string) bool {
	for p, actions := range a {
		if !strings.EqualFold(p, product) {
			continue
		}
		for name, on := range actions {
			if on && strings.EqualFold(name, action) {
				return true
			}
		}
	}
	return false
}

// Allows reports whether any (product, action) pair listed in required with a
// true flag is enabled in a.
func (a Actions) Allows(required Actions) bool {
	for product, actions := range required {
		for action, wanted := range actions {
			if wanted && a.Enabled(product, action) {
				return true
			}
		}
	}
	return false
}

// Count returns the number of enabled flags.
func (a Actions) Count() int {
	n := 0
	for _, actions := range a {
		for _, on := range actions {
			if on {
				n++
			}
		}
	}
	return n
}

// Filter returns the items allowed by cfg, keeping their order.
func Filter[T Gated](items []T, cfg Actions) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if cfg.Allows(item.RequiredActions()) {
			out = append(out, item)
		}
	}
	return out
}
