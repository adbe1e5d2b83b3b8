// Package pathescape replaces characters a target filesystem forbids in
// path fragments with fixed-width hex placeholders (':' becomes "_3a_").
//
// Which characters are forbidden depends on host filesystem rules and is
// supplied by the caller; this package only consumes the set. Escaping is
// offered in two forms: a plain flattened string, and a segmented string
// (segstring.SegString) of zero-copy slices over the original input
// interleaved with placeholder segments, for callers assembling composite
// paths that want to defer materialization.
package pathescape

import (
	"fmt"
	"strings"

	"github.com/isseis/go-safe-path/internal/segstring"
)

// Escaper holds a forbidden-byte set and its byte-to-placeholder mapping.
// An Escaper is immutable after construction and safe for concurrent use.
type Escaper struct {
	forbidden    [256]bool
	replacements [256]string
}

// New creates an Escaper that replaces every byte of forbidden with its
// bracketed-hex placeholder "_%02x_".
func New(forbidden string) *Escaper {
	e := &Escaper{}
	for i := 0; i < len(forbidden); i++ {
		b := forbidden[i]
		e.forbidden[b] = true
		e.replacements[b] = fmt.Sprintf("_%02x_", b)
	}
	return e
}

// NewWithReplacements creates an Escaper with caller-chosen placeholder
// strings, for filesystems whose escaping convention differs from the hex
// default.
func NewWithReplacements(replacements map[byte]string) *Escaper {
	e := &Escaper{}
	for b, r := range replacements {
		e.forbidden[b] = true
		e.replacements[b] = r
	}
	return e
}

// Forbidden reports whether b is in the forbidden set.
func (e *Escaper) Forbidden(b byte) bool {
	return e.forbidden[b]
}

// indexForbidden returns the index of the first forbidden byte at or after
// from, or -1 if the rest of the path is clean.
func (e *Escaper) indexForbidden(path string, from int) int {
	for i := from; i < len(path); i++ {
		if e.forbidden[path[i]] {
			return i
		}
	}
	return -1
}

// EscapeToString returns path with every forbidden byte replaced by its
// placeholder. Clean input is returned unchanged, with no copy.
func (e *Escaper) EscapeToString(path string) string {
	i := e.indexForbidden(path, 0)
	if i < 0 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + len(e.replacements[path[i]]))
	last := 0
	for i >= 0 {
		b.WriteString(path[last:i])
		b.WriteString(e.replacements[path[i]])
		last = i + 1
		i = e.indexForbidden(path, last)
	}
	b.WriteString(path[last:])
	return b.String()
}

// EscapeAppend appends the escaped form of path onto prefix without copying
// any clean run of path: each run becomes a slice segment referencing path
// itself, and each forbidden byte becomes a placeholder segment. The result
// flattened is always prefix.String() + EscapeToString(path).
func (e *Escaper) EscapeAppend(prefix segstring.SegString, path string) segstring.SegString {
	i := e.indexForbidden(path, 0)
	if i < 0 {
		return prefix.Append(path)
	}

	ss := prefix
	last := 0
	for i >= 0 {
		if i > last {
			ss = ss.AppendSlice(path, last, i-last)
		}
		ss = ss.Append(e.replacements[path[i]])
		last = i + 1
		i = e.indexForbidden(path, last)
	}
	if last < len(path) {
		ss = ss.AppendSlice(path, last, len(path)-last)
	}
	return ss
}

// EscapeToChain is EscapeAppend with an empty prefix. Clean input yields a
// single-segment chain over path itself.
func (e *Escaper) EscapeToChain(path string) segstring.SegString {
	return e.EscapeAppend(segstring.SegString{}, path)
}
