// Package intervals implements an in-memory index of labeled half-open
// integer intervals with point, overlap and containment queries and the
// chop operation that trims intervals hanging into a removed range.
package intervals

import (
	"fmt"

	"github.com/nikmy/intervald/pkg/errors"
)

// MaxPoint is the largest boundary an interval may have.
const MaxPoint uint64 = 1<<32 - 1

var ErrInvalidInterval = errors.Error("invalid interval")

// Interval is the half-open range [Begin, End) tagged with Label.
type Interval struct {
	Begin uint64
	End   uint64
	Label string
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d) %s", iv.Begin, iv.End, iv.Label)
}

func (iv Interval) valid() bool {
	return iv.Begin < iv.End && iv.End <= MaxPoint
}

func (iv Interval) contains(p uint64) bool {
	return iv.Begin <= p && p < iv.End
}

func (iv Interval) overlaps(begin, end uint64) bool {
	return iv.Begin < end && iv.End > begin
}

func (iv Interval) within(begin, end uint64) bool {
	return iv.Begin >= begin && iv.End <= end
}

func less(a, b Interval) bool {
	if a.Begin != b.Begin {
		return a.Begin < b.Begin
	}
	if a.End != b.End {
		return a.End < b.End
	}
	return a.Label < b.Label
}
