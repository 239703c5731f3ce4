// Package pagination computes the compact page-control window shown under
// search results: first and last page always visible, a few neighbors
// around the current page, ellipses for the collapsed gaps.
package pagination

import "strconv"

// ItemKind discriminates entries in a pagination window
type ItemKind int

const (
	KindPage ItemKind = iota
	KindEllipsis
)

// Nav tags relative navigation items so consumers switch on the tag
// instead of inspecting rendered labels
type Nav int

const (
	NavNone Nav = iota
	NavPrev
	NavNext
)

// DefaultNeighbors is the number of numbered pages shown on each side of
// the current page when the caller does not pick a count
const DefaultNeighbors = 1

// Item is a single control in the pagination strip. Ellipsis items carry
// no target and are never interactive.
type Item struct {
	Kind     ItemKind
	Nav      Nav
	Target   int
	Label    string
	Current  bool
	Disabled bool
}

// Focusable reports whether the item can take keyboard focus. Disabled
// controls and ellipses are excluded from the focus path entirely.
func (it Item) Focusable() bool {
	return it.Kind == KindPage && !it.Disabled
}

// Window computes the pagination strip for the current page within total
// pages, showing neighbors numbered pages on each side of current.
//
// The emitted order is fixed: Prev, page 1, optional ellipsis, the window
// pages, optional ellipsis, the last page (when total > 1), Next. Page 1
// and the last page never appear twice. A total below 1 is treated as 1.
// An out-of-range current yields a strip where no item carries the
// Current flag; targets are still clamped into range.
func Window(current, total, neighbors int) []Item {
	if total < 1 {
		total = 1
	}
	if neighbors < 0 {
		neighbors = 0
	}

	items := make([]Item, 0, 2*neighbors+7)

	items = append(items, Item{
		Kind:     KindPage,
		Nav:      NavPrev,
		Target:   clamp(current-1, 1, total),
		Label:    "Prev",
		Disabled: current <= 1,
	})

	items = append(items, Item{
		Kind:    KindPage,
		Target:  1,
		Label:   "1",
		Current: current == 1,
	})

	// Interior window, clamped so pages 1 and total stay unique
	start := max(2, current-neighbors)
	end := min(total-1, current+neighbors)

	if start > 2 {
		items = append(items, Item{Kind: KindEllipsis})
	}

	for p := start; p <= end; p++ {
		items = append(items, Item{
			Kind:    KindPage,
			Target:  p,
			Label:   strconv.Itoa(p),
			Current: p == current,
		})
	}

	if end < total-1 {
		items = append(items, Item{Kind: KindEllipsis})
	}

	if total > 1 {
		items = append(items, Item{
			Kind:    KindPage,
			Target:  total,
			Label:   strconv.Itoa(total),
			Current: current == total,
		})
	}

	items = append(items, Item{
		Kind:     KindPage,
		Nav:      NavNext,
		Target:   clamp(current+1, 1, total),
		Label:    "Next",
		Disabled: current >= total,
	})

	return items
}

// FirstFocusable returns the index of the first focusable item, or -1 when
// nothing in the strip can take focus.
func FirstFocusable(items []Item) int {
	for i, it := range items {
		if it.Focusable() {
			return i
		}
	}
	return -1
}

// LastFocusable returns the index of the last focusable item, or -1 when
// nothing in the window can take focus.
func LastFocusable(items []Item) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Focusable() {
			return i
		}
	}
	return -1
}

// StepFocusable returns the index of the nearest focusable item moving
// from idx in direction dir (+1 or -1), skipping disabled controls and
// ellipses. It does not wrap; when no focusable item exists in that
// direction it returns idx unchanged. An idx outside the slice falls back
// to the first focusable item.
func StepFocusable(items []Item, idx, dir int) int {
	if idx < 0 || idx >= len(items) {
		return FirstFocusable(items)
	}
	for i := idx + dir; i >= 0 && i < len(items); i += dir {
		if items[i].Focusable() {
			return i
		}
	}
	return idx
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
