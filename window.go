package lz77

// byteRing is a fixed-capacity FIFO over a ring buffer. It backs both the
// sliding window (push evicts the oldest byte once full) and the read-ahead
// buffer (the engine pops before pushing, so eviction never triggers there).
type byteRing struct {
	buf  []byte
	head int // index of the oldest byte
	size int
}

func newByteRing(capacity int) *byteRing {
	return &byteRing{buf: make([]byte, capacity)}
}

// Len returns the number of bytes currently held.
func (r *byteRing) Len() int {
	return r.size
}

// At returns the i-th byte counting from the oldest entry. i must be in
// [0, Len()).
func (r *byteRing) At(i int) byte {
	return r.buf[(r.head+i)%len(r.buf)]
}

// PushBack appends b as the newest byte, evicting the oldest one when full.
func (r *byteRing) PushBack(b byte) {
	if r.size == len(r.buf) {
		r.buf[r.head] = b
		r.head = (r.head + 1) % len(r.buf)
		return
	}

	r.buf[(r.head+r.size)%len(r.buf)] = b
	r.size++
}

// PopFront removes and returns the oldest byte; ok is false when empty.
func (r *byteRing) PopFront() (b byte, ok bool) {
	if r.size == 0 {
		return 0, false
	}

	b = r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return b, true
}
