package intervals

// node holds every interval starting at begin. The tree is an AVL tree
// ordered by begin; max is the largest end found in the node's subtree.
type node struct {
	begin uint64
	ends  []span
	max   uint64

	// height counts nodes, not edges
	height int
	left   *node
	right  *node
}

type span struct {
	end   uint64
	label string
}

func newNode(iv Interval) *node {
	return &node{
		begin:  iv.Begin,
		ends:   []span{{end: iv.End, label: iv.Label}},
		max:    iv.End,
		height: 1,
	}
}

func (n *node) find(end uint64, label string) int {
	for i, s := range n.ends {
		if s.end == end && s.label == label {
			return i
		}
	}
	return -1
}

// insert adds iv to the subtree and reports whether it was not there yet.
func (n *node) insert(iv Interval) (*node, bool) {
	if n == nil {
		return newNode(iv), true
	}

	var added bool
	switch {
	case iv.Begin < n.begin:
		n.left, added = n.left.insert(iv)
	case iv.Begin > n.begin:
		n.right, added = n.right.insert(iv)
	default:
		if n.find(iv.End, iv.Label) >= 0 {
			return n, false
		}
		n.ends = append(n.ends, span{end: iv.End, label: iv.Label})
		added = true
	}

	if !added {
		return n, false
	}
	return n.rebalance(), true
}

// remove deletes iv from the subtree and reports whether it was present.
func (n *node) remove(iv Interval) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case iv.Begin < n.begin:
		n.left, removed = n.left.remove(iv)
	case iv.Begin > n.begin:
		n.right, removed = n.right.remove(iv)
	default:
		i := n.find(iv.End, iv.Label)
		if i < 0 {
			return n, false
		}
		last := len(n.ends) - 1
		n.ends[i] = n.ends[last]
		n.ends = n.ends[:last]
		if len(n.ends) == 0 {
			return n.unlink(), true
		}
		removed = true
	}

	if !removed {
		return n, false
	}
	return n.rebalance(), true
}

// unlink drops n from the tree, replacing it with its in-order successor.
func (n *node) unlink() *node {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	right, succ := n.right.popMin()
	succ.left, succ.right = n.left, right
	return succ.rebalance()
}

func (n *node) popMin() (rest *node, min *node) {
	if n.left == nil {
		return n.right, n
	}
	n.left, min = n.left.popMin()
	return n.rebalance(), min
}

// point calls fn for every interval containing p.
func (n *node) point(p uint64, fn func(Interval)) {
	if n == nil || p >= n.max {
		return
	}

	n.left.point(p, fn)

	if p < n.begin {
		return
	}

	for _, s := range n.ends {
		if p < s.end {
			fn(Interval{Begin: n.begin, End: s.end, Label: s.label})
		}
	}

	n.right.point(p, fn)
}

// overlap calls fn for every interval intersecting [begin, end).
func (n *node) overlap(begin, end uint64, fn func(Interval)) {
	if n == nil || begin >= n.max {
		return
	}

	n.left.overlap(begin, end, fn)

	if end <= n.begin {
		return
	}

	for _, s := range n.ends {
		if s.end > begin {
			fn(Interval{Begin: n.begin, End: s.end, Label: s.label})
		}
	}

	n.right.overlap(begin, end, fn)
}

// walk visits the subtree in begin order.
func (n *node) walk(fn func(Interval)) {
	if n == nil {
		return
	}
	n.left.walk(fn)
	for _, s := range n.ends {
		fn(Interval{Begin: n.begin, End: s.end, Label: s.label})
	}
	n.right.walk(fn)
}

func (n *node) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) getMax() uint64 {
	if n == nil {
		return 0
	}
	return n.max
}

func (n *node) update() {
	n.height = 1 + max(n.left.getHeight(), n.right.getHeight())

	n.max = max(n.left.getMax(), n.right.getMax())
	for _, s := range n.ends {
		n.max = max(n.max, s.end)
	}
}

func (n *node) rebalance() *node {
	n.update()

	switch n.left.getHeight() - n.right.getHeight() {
	case -2:
		if n.right.left.getHeight() > n.right.right.getHeight() {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	case 2:
		if n.left.right.getHeight() > n.left.left.getHeight() {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	}
	return n
}

func (n *node) rotateLeft() *node {
	root := n.right
	n.right = root.left
	root.left = n

	n.update()
	root.update()
	return root
}

func (n *node) rotateRight() *node {
	root := n.left
	n.left = root.right
	root.right = n

	n.update()
	root.update()
	return root
}
