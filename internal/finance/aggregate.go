package finance

import "sort"

// Totals is a grouped sum that remembers the order keys were first seen,
// which TopN uses as the tie-break.
type Totals[K comparable] struct {
	order []K
	sums  map[K]float64
}

// Aggregate iterates records once, accumulating valueFn(record) under
// keyFn(record). Non-numeric values contribute 0. Safe to call repeatedly;
// each call builds a fresh result.
func Aggregate[T any, K comparable](records []T, keyFn func(T) K, valueFn func(T) any) *Totals[K] {
	t := &Totals[K]{sums: make(map[K]float64)}
	for _, r := range records {
		k := keyFn(r)
		if _, seen := t.sums[k]; !seen {
			t.order = append(t.order, k)
		}
		t.sums[k] += Num(valueFn(r))
	}
	return t
}

// Get returns the accumulated total for k (0 when unseen).
func (t *Totals[K]) Get(k K) float64 { return t.sums[k] }

// Keys returns the group keys in first-seen order.
func (t *Totals[K]) Keys() []K { return t.order }

// RankedEntry is one labeled row of a top-N ranking.
type RankedEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TopN ranks the groups by descending total and keeps the first n. Equal
// totals stay in first-seen order (stable sort, no secondary key).
func TopN[K comparable](t *Totals[K], n int, label func(K) string) []RankedEntry {
	entries := make([]RankedEntry, 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, RankedEntry{Label: label(k), Value: t.sums[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
