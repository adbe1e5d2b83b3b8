// Package segstring implements an immutable segmented string: a persistent
// chain of string slices that can be extended in constant time without
// copying previously appended text, and is materialized into a single
// contiguous string only on demand.
//
// A SegString is a handle to the tail of a singly-linked chain of segments.
// Each segment references a slice of a backing string; the chain links run
// from the tail (last-appended text) toward the head (first-appended text).
// Appending returns a new tail whose predecessor is the existing chain, so
// chains are persistent: multiple SegStrings may share a common prefix, and
// a fully built chain is safe for concurrent read access.
//
// Equality and hashing are defined over the logical content. Two chains with
// different segment boundaries but identical concatenated content compare
// equal and hash identically.
package segstring

import (
	"fmt"
	"unsafe"
)

// segment is one link in the chain. All fields are set at construction and
// never modified afterwards.
type segment struct {
	backing string
	start   int
	length  int
	prev    *segment
}

// text returns the slice of the backing string this segment contributes.
// Go substrings share the backing array, so this never copies.
func (s *segment) text() string {
	return s.backing[s.start : s.start+s.length]
}

// SegString is an immutable segmented string. The zero value is the empty
// string. SegString values are cheap to copy; they hold a single pointer to
// the tail segment of a shared, immutable chain.
type SegString struct {
	tail *segment
}

// New returns a single-segment SegString covering the whole of s.
// It accepts any string, including empty, and never copies.
func New(s string) SegString {
	return SegString{tail: &segment{backing: s, length: len(s)}}
}

// NewSlice returns a single-segment SegString covering s[start : start+length].
// The range must lie within s; passing an invalid range is a programming
// error and panics.
func NewSlice(s string, start, length int) SegString {
	checkRange(s, start, length)
	return SegString{tail: &segment{backing: s, start: start, length: length}}
}

func checkRange(s string, start, length int) {
	if start < 0 || length < 0 || start+length > len(s) {
		panic(fmt.Sprintf("segstring: range [%d:%d] out of bounds for string of length %d", start, start+length, len(s)))
	}
}

// Append returns a new SegString whose content is the receiver's content
// followed by s. The receiver and its ancestors are untouched, so appending
// is O(1) and existing chains remain valid. Appending the empty string is
// legal and yields a zero-length segment.
func (ss SegString) Append(s string) SegString {
	return SegString{tail: &segment{backing: s, length: len(s), prev: ss.tail}}
}

// AppendSlice is Append restricted to s[start : start+length].
// An invalid range panics, as for NewSlice.
func (ss SegString) AppendSlice(s string, start, length int) SegString {
	checkRange(s, start, length)
	return SegString{tail: &segment{backing: s, start: start, length: length, prev: ss.tail}}
}

// Len returns the total content length in bytes, summed across all segments.
func (ss SegString) Len() int {
	n := 0
	for seg := ss.tail; seg != nil; seg = seg.prev {
		n += seg.length
	}
	return n
}

// IsEmpty reports whether the SegString has no content. A chain of
// zero-length segments is empty.
func (ss SegString) IsEmpty() bool {
	return ss.Len() == 0
}

// eachBackward visits every non-empty segment slice from the tail (logically
// last text) toward the head. It stops early if visit returns false. All
// traversals of the chain (flatten, comparison, hashing) walk in this order
// and share this helper where possible, since the chain stores its links in
// the reverse of logical text order.
func (ss SegString) eachBackward(visit func(part string) bool) {
	for seg := ss.tail; seg != nil; seg = seg.prev {
		if seg.length == 0 {
			continue
		}
		if !visit(seg.text()) {
			return
		}
	}
}

// String materializes the chain into a single contiguous string.
//
// A single-segment chain returns its backing slice directly, with no copy.
// Otherwise one buffer of the total length is allocated and filled backward,
// tail segment last-to-first, so the chain is walked exactly twice (once to
// size, once to fill) regardless of depth.
func (ss SegString) String() string {
	seg := ss.tail
	if seg == nil {
		return ""
	}
	if seg.prev == nil {
		return seg.text()
	}

	total := ss.Len()
	if total == 0 {
		return ""
	}
	buf := make([]byte, total)
	off := total
	ss.eachBackward(func(part string) bool {
		off -= len(part)
		copy(buf[off:], part)
		return true
	})
	// buf is exclusively owned and never modified after this point, so the
	// zero-copy conversion is safe and keeps materialization at exactly one
	// allocation.
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}
