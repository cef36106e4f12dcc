package intervals

import "github.com/google/btree"

const boundaryDegree = 32

type boundary struct {
	point uint64
	refs  int
}

func byPoint(a, b boundary) bool {
	return a.point < b.point
}

// boundaryTable counts how many stored intervals begin or end at each point.
type boundaryTable struct {
	tree *btree.BTreeG[boundary]
}

func newBoundaryTable() *boundaryTable {
	return &boundaryTable{tree: btree.NewG(boundaryDegree, byPoint)}
}

func (t *boundaryTable) add(p uint64) {
	b, _ := t.tree.Get(boundary{point: p})
	b.point = p
	b.refs++
	t.tree.ReplaceOrInsert(b)
}

func (t *boundaryTable) remove(p uint64) {
	b, ok := t.tree.Get(boundary{point: p})
	if !ok {
		return
	}

	b.refs--
	if b.refs <= 0 {
		t.tree.Delete(b)
		return
	}
	t.tree.ReplaceOrInsert(b)
}

func (t *boundaryTable) refs(p uint64) int {
	b, _ := t.tree.Get(boundary{point: p})
	return b.refs
}

// ascend calls fn for each boundary in [from, to) until fn returns false.
func (t *boundaryTable) ascend(from, to uint64, fn func(p uint64) bool) {
	t.tree.AscendRange(boundary{point: from}, boundary{point: to}, func(b boundary) bool {
		return fn(b.point)
	})
}

func (t *boundaryTable) len() int {
	return t.tree.Len()
}
