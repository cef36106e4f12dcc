package intervals

import (
	"slices"
	"sort"
	"sync"
)

// Index is a set of labeled intervals safe for concurrent use. Every
// exported method holds the index lock for its whole duration, so each call
// takes effect atomically with respect to all others.
type Index struct {
	m          sync.RWMutex
	root       *node
	boundaries *boundaryTable
	size       int
}

func New() *Index {
	return &Index{boundaries: newBoundaryTable()}
}

// Insert adds [begin, end) labeled label. Inserting an interval that is
// already present does nothing.
func (x *Index) Insert(begin, end uint64, label string) error {
	iv := Interval{Begin: begin, End: end, Label: label}
	if !iv.valid() {
		return ErrInvalidInterval
	}

	x.m.Lock()
	defer x.m.Unlock()

	x.insert(iv)
	return nil
}

// Point returns the sorted distinct labels of intervals containing p.
func (x *Index) Point(p uint64) []string {
	x.m.RLock()
	defer x.m.RUnlock()

	return collectLabels(func(fn func(Interval)) {
		x.root.point(p, fn)
	})
}

// Overlap returns the sorted distinct labels of intervals intersecting
// [begin, end).
func (x *Index) Overlap(begin, end uint64) []string {
	if begin >= end {
		return nil
	}

	x.m.RLock()
	defer x.m.RUnlock()

	return collectLabels(func(fn func(Interval)) {
		x.root.overlap(begin, end, fn)
	})
}

// Envelop returns the intervals lying entirely inside [begin, end).
func (x *Index) Envelop(begin, end uint64, filters ...Filter) []Interval {
	x.m.RLock()
	defer x.m.RUnlock()

	return x.envelop(begin, end, newFilter(filters))
}

// RemoveEnvelop removes the intervals Envelop would return and reports how
// many there were.
func (x *Index) RemoveEnvelop(begin, end uint64, filters ...Filter) int {
	x.m.Lock()
	defer x.m.Unlock()

	return x.removeEnvelop(begin, end, newFilter(filters))
}

// Chop removes [begin, end) from the index. Intervals inside the range are
// deleted, intervals hanging over either edge are trimmed back to it, so an
// interval covering the whole range is split in two.
func (x *Index) Chop(begin, end uint64, filters ...Filter) {
	x.m.Lock()
	defer x.m.Unlock()

	x.chop(begin, end, newFilter(filters))
}

func (x *Index) Len() int {
	x.m.RLock()
	defer x.m.RUnlock()

	return x.size
}

// Boundaries returns the number of distinct points some interval begins or
// ends at.
func (x *Index) Boundaries() int {
	x.m.RLock()
	defer x.m.RUnlock()

	return x.boundaries.len()
}

func (x *Index) IsBoundary(p uint64) bool {
	x.m.RLock()
	defer x.m.RUnlock()

	return x.boundaries.refs(p) > 0
}

// Intervals returns every stored interval ordered by begin, end and label.
func (x *Index) Intervals() []Interval {
	x.m.RLock()
	defer x.m.RUnlock()

	all := make([]Interval, 0, x.size)
	x.root.walk(func(iv Interval) {
		all = append(all, iv)
	})
	sortIntervals(all)
	return all
}

func (x *Index) insert(iv Interval) {
	root, added := x.root.insert(iv)
	x.root = root
	if !added {
		return
	}

	x.size++
	x.boundaries.add(iv.Begin)
	x.boundaries.add(iv.End)
}

func (x *Index) remove(iv Interval) {
	root, removed := x.root.remove(iv)
	x.root = root
	if !removed {
		return
	}

	x.size--
	x.boundaries.remove(iv.Begin)
	x.boundaries.remove(iv.End)
}

func (x *Index) envelop(begin, end uint64, f filter) []Interval {
	if x.root == nil || begin >= end {
		return nil
	}

	candidates := make(map[Interval]struct{})
	collect := func(iv Interval) {
		candidates[iv] = struct{}{}
	}

	// anything enveloped begins at a boundary inside the range
	x.root.point(begin, collect)
	x.boundaries.ascend(begin, end, func(p uint64) bool {
		x.root.point(p, collect)
		return true
	})

	var result []Interval
	for iv := range candidates {
		if iv.within(begin, end) && f.match(iv) {
			result = append(result, iv)
		}
	}
	sortIntervals(result)
	return result
}

func (x *Index) removeEnvelop(begin, end uint64, f filter) int {
	hits := x.envelop(begin, end, f)
	for _, iv := range hits {
		x.remove(iv)
	}
	return len(hits)
}

func (x *Index) chop(begin, end uint64, f filter) {
	if begin >= end {
		return
	}

	var hangers, fragments []Interval

	x.root.point(begin, func(iv Interval) {
		if iv.Begin < begin && f.match(iv) {
			hangers = append(hangers, iv)
			fragments = append(fragments, Interval{Begin: iv.Begin, End: begin, Label: f.relabel(iv)})
		}
	})
	x.root.point(end, func(iv Interval) {
		if iv.End > end && f.match(iv) {
			hangers = append(hangers, iv)
			fragments = append(fragments, Interval{Begin: end, End: iv.End, Label: f.relabel(iv)})
		}
	})

	x.removeEnvelop(begin, end, f)
	for _, iv := range hangers {
		x.remove(iv)
	}
	for _, iv := range fragments {
		x.insert(iv)
	}
}

func collectLabels(search func(fn func(Interval))) []string {
	seen := make(map[string]struct{})
	search(func(iv Interval) {
		seen[iv.Label] = struct{}{}
	})

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		return less(ivs[i], ivs[j])
	})
}
