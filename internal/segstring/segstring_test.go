package segstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short", "123456"},
		{"path-like", "dir/sub/file.ext"},
		{"long", strings.Repeat("abcdefghij", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := New(tt.input)
			assert.Equal(t, tt.input, ss.String())
			assert.Equal(t, len(tt.input), ss.Len())
		})
	}
}

func TestZeroValue(t *testing.T) {
	var ss SegString
	assert.Equal(t, "", ss.String())
	assert.Equal(t, 0, ss.Len())
	assert.True(t, ss.IsEmpty())
	assert.True(t, ss.EqualString(""))
}

func TestNewSlice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		start  int
		length int
		want   string
	}{
		{"middle", "abcdef", 2, 3, "cde"},
		{"full", "abcdef", 0, 6, "abcdef"},
		{"empty slice", "abcdef", 3, 0, ""},
		{"at end", "abcdef", 6, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := NewSlice(tt.input, tt.start, tt.length)
			assert.Equal(t, tt.want, ss.String())
			assert.Equal(t, tt.length, ss.Len())
		})
	}
}

func TestNewSlice_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		length int
	}{
		{"negative start", -1, 2},
		{"negative length", 0, -1},
		{"past end", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() {
				NewSlice("abcdef", tt.start, tt.length)
			})
		})
	}
}

func TestAppend_ContentConcatenation(t *testing.T) {
	base := New("base")
	ss := base.Append("/dir").Append("/file")
	assert.Equal(t, "base/dir/file", ss.String())
	assert.Equal(t, 13, ss.Len())

	// base is untouched
	assert.Equal(t, "base", base.String())
}

func TestAppend_EmptySegments(t *testing.T) {
	ss := New("").Append("abc").Append("").Append("def").Append("")
	assert.Equal(t, "abcdef", ss.String())
	assert.Equal(t, 6, ss.Len())
	assert.True(t, ss.EqualString("abcdef"))
}

func TestAppendSlice(t *testing.T) {
	ss := New("abc").AppendSlice("xxdefxx", 2, 3)
	assert.Equal(t, "abcdef", ss.String())

	require.Panics(t, func() {
		New("abc").AppendSlice("short", 3, 10)
	})
}

func TestStructuralSharing(t *testing.T) {
	// Two chains forked from a common prefix must not interfere.
	prefix := New("downloads/").Append("torrent")
	a := prefix.Append(".part")
	b := prefix.Append(".done")

	assert.Equal(t, "downloads/torrent.part", a.String())
	assert.Equal(t, "downloads/torrent.done", b.String())
	assert.Equal(t, "downloads/torrent", prefix.String())
}

func TestString_SingleSegmentSharesBacking(t *testing.T) {
	// Single full-coverage segment returns the backing string itself.
	s := "no copies here"
	ss := New(s)
	require.Equal(t, s, ss.String())

	// Slice coverage returns just the slice.
	sub := NewSlice(s, 3, 6)
	require.Equal(t, s[3:9], sub.String())
}

func TestString_ManySegments(t *testing.T) {
	var ss SegString
	var want strings.Builder
	for i := 0; i < 100; i++ {
		part := strings.Repeat(string(rune('a'+i%26)), i%7)
		ss = ss.Append(part)
		want.WriteString(part)
	}
	assert.Equal(t, want.String(), ss.String())
	assert.Equal(t, want.Len(), ss.Len())
}
