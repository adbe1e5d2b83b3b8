package segstring

// Comparison walks chains from the tail (logical end of the text) toward the
// head, because that is the direction the predecessor links run. Both
// algorithms below therefore compare trailing windows of text and move
// leftward.

// EqualString reports whether the chain's logical content equals s.
// It never materializes the chain: each segment is compared against the
// window of s ending at a right-to-left cursor.
func (ss SegString) EqualString(s string) bool {
	seg := ss.tail
	if seg == nil {
		return s == ""
	}
	if seg.prev == nil {
		return seg.text() == s
	}

	rem := len(s)
	equal := true
	ss.eachBackward(func(part string) bool {
		if len(part) > rem || s[rem-len(part):rem] != part {
			equal = false
			return false
		}
		rem -= len(part)
		return true
	})
	// rem > 0 means s has a prefix the chain never covered.
	return equal && rem == 0
}

// Equal reports whether two chains have identical logical content,
// regardless of how either side is segmented.
//
// Each side keeps an independent cursor tracking how much of its current
// segment is still unconsumed. At every step the trailing min(remA, remB)
// bytes of both sides are compared; the side whose segment is exhausted
// advances to its predecessor. Segment boundaries on the two sides need
// never align.
func (ss SegString) Equal(other SegString) bool {
	a, b := ss.tail, other.tail
	if a == b {
		return true
	}
	if a != nil && b != nil && a.prev == nil && b.prev == nil {
		return a.text() == b.text()
	}

	ca, cb := newRevCursor(a), newRevCursor(b)
	for !ca.done() && !cb.done() {
		n := min(ca.rem, cb.rem)
		if ca.window(n) != cb.window(n) {
			return false
		}
		ca.consume(n)
		cb.consume(n)
	}
	return ca.done() && cb.done()
}

// revCursor consumes a chain from the logical end of its text. rem is the
// number of still-unconsumed bytes in the current segment; the unconsumed
// region is always a prefix of the segment, since consumption eats from the
// right.
type revCursor struct {
	seg *segment
	rem int
}

func newRevCursor(seg *segment) revCursor {
	c := revCursor{seg: seg}
	if seg != nil {
		c.rem = seg.length
	}
	c.normalize()
	return c
}

// normalize skips exhausted and zero-length segments.
func (c *revCursor) normalize() {
	for c.seg != nil && c.rem == 0 {
		c.seg = c.seg.prev
		if c.seg != nil {
			c.rem = c.seg.length
		}
	}
}

// window returns the trailing n bytes of the unconsumed region.
// Requires n <= c.rem.
func (c *revCursor) window(n int) string {
	end := c.seg.start + c.rem
	return c.seg.backing[end-n : end]
}

func (c *revCursor) consume(n int) {
	c.rem -= n
	c.normalize()
}

func (c *revCursor) done() bool {
	return c.seg == nil
}
