package intervals

type filter struct {
	label *string
}

type Filter func(*filter)

// ByLabel restricts an operation to intervals labeled exactly label.
func ByLabel(label string) Filter {
	return func(f *filter) {
		f.label = &label
	}
}

func newFilter(filters []Filter) filter {
	var f filter
	for _, apply := range filters {
		apply(&f)
	}
	return f
}

func (f filter) match(iv Interval) bool {
	return f.label == nil || *f.label == iv.Label
}

// relabel names a fragment trimmed from iv: a filtered operation stamps its
// own label on every fragment, an unfiltered one keeps the original.
func (f filter) relabel(iv Interval) string {
	if f.label != nil {
		return *f.label
	}
	return iv.Label
}
