// Package builder chains setters over a value and stops at the first one
// that fails.
package builder

func New[T any]() *Builder[T] {
	return From(new(T))
}

// From starts a chain over an already initialized value.
func From[T any](obj *T) *Builder[T] {
	return &Builder[T]{Obj: obj}
}

type Builder[T any] struct {
	Obj *T
	Err error
}

func (b *Builder[T]) Use(setter func(b *T)) *Builder[T] {
	if b.Err == nil {
		setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(b *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Obj, nil
}
