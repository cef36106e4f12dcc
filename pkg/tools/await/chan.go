package await

import "context"

func FromChan[T any](ch <-chan T) Awaiter {
	return &chanAwaiter[T]{recv: ch}
}

func ToChan[T any](ch chan<- T, value T) Awaiter {
	return &chanAwaiter[T]{send: ch, val: value}
}

type chanAwaiter[T any] struct {
	recv <-chan T
	send chan<- T
	val  T
	got  bool
}

func (a *chanAwaiter[T]) Await(ctx context.Context) (waited bool) {
	if a.send != nil {
		select {
		case <-ctx.Done():
			return false
		case a.send <- a.val:
			return true
		}
	}

	select {
	case <-ctx.Done():
		return false
	case a.val = <-a.recv:
		a.got = true
		return true
	}
}

// Value returns the received value; it is false for send awaiters and
// before a receive happened.
func (a *chanAwaiter[T]) Value() (any, bool) {
	return a.val, a.got
}
