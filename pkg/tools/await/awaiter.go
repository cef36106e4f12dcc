// Package await wraps blocking waits so they can be abandoned with a context.
package await

import "context"

type Awaiter interface {
	Value() (any, bool)
	Await(ctx context.Context) (waited bool)
}
