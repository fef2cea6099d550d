package lz77

// findMatch searches the sliding window for a run matching the front of the
// read-ahead buffer. Candidates are scanned from the most recent window byte
// to the oldest, and the first run of at least ShortestMatch bytes wins
// (nearest-match-wins: among sufficiently long matches the smallest offset is
// always chosen; the search never continues looking for a longer match at a
// larger offset). A run may not extend past the window's newest byte, which
// keeps offset+1 >= length for every returned pointer.
func (c Codec) findMatch(window, buffer *byteRing) (pointer, bool) {
	shortest := c.ShortestMatch()
	longest := c.LongestMatch()
	wLen := window.Len()
	bLen := buffer.Len()

	for cand := wLen - 1; cand >= 0; cand-- {
		if window.At(cand) != buffer.At(0) {
			continue
		}

		n := 0
		for cand+n < wLen && n < bLen && n < longest && window.At(cand+n) == buffer.At(n) {
			n++
		}

		if n < shortest {
			continue
		}

		return pointer{offset: wLen - cand - 1, length: n}, true
	}

	return pointer{}, false
}
