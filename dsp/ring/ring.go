package ring

import "fmt"

// Ring is a fixed-capacity circular buffer of T. The zero value is not
// usable; create rings with [New].
type Ring[T any] struct {
	buf []T
	pos int
}

// New returns a zero-filled ring holding capacity values.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be > 0: %d", capacity)
	}

	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// Cap returns the number of values the ring retains.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Cursor returns the next write position, always in [0, Cap()).
func (r *Ring[T]) Cursor() int {
	return r.pos
}

// Push writes v at the cursor and advances it, overwriting the oldest value
// once the ring is full.
func (r *Ring[T]) Push(v T) {
	r.buf[r.pos] = v
	r.pos++
	if r.pos >= len(r.buf) {
		r.pos = 0
	}
}

// At returns the value pushed offset writes ago. At(0) is the newest value.
// offset must be in [0, Cap()).
func (r *Ring[T]) At(offset int) T {
	p := r.pos - 1 - offset
	if p < 0 {
		p += len(r.buf)
	}

	return r.buf[p]
}

// Newest returns the most recently pushed value.
func (r *Ring[T]) Newest() T {
	return r.At(0)
}

// Snapshot copies the ring contents into dst ordered newest first and
// returns dst. A nil or short dst is replaced by a fresh slice.
func (r *Ring[T]) Snapshot(dst []T) []T {
	if len(dst) < len(r.buf) {
		dst = make([]T, len(r.buf))
	}

	dst = dst[:len(r.buf)]
	for i := range dst {
		dst[i] = r.At(i)
	}

	return dst
}

// Clone returns an independent copy of the ring, cursor included.
func (r *Ring[T]) Clone() *Ring[T] {
	return &Ring[T]{buf: append([]T(nil), r.buf...), pos: r.pos}
}

// Reset zeroes the contents and rewinds the cursor.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.pos = 0
}
