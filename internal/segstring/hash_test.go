package segstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_SegmentationIndependence(t *testing.T) {
	const s = "123456"
	want := New(s).Hash()

	variants := []SegString{
		New("123").Append("456"),
		New("1").Append("2").Append("3").Append("4").Append("5").Append("6"),
		New("12345").Append("6"),
		New("").Append(s).Append(""),
		NewSlice("xx123456xx", 2, 6),
		New("12").AppendSlice("34567", 0, 4),
	}

	for _, v := range variants {
		assert.Equal(t, want, v.Hash())
	}
}

func TestHash_Deterministic(t *testing.T) {
	ss := New("abc").Append("def")
	assert.Equal(t, ss.Hash(), ss.Hash())
}

func TestHash_DiffersForDifferentContent(t *testing.T) {
	// Not guaranteed in general, but these must not collide for the hash to
	// be of any use.
	pairs := []struct{ a, b string }{
		{"12345", "12456"},
		{"", "a"},
		{"abc", "abd"},
		{"abc", "cba"},
	}

	for _, p := range pairs {
		assert.NotEqual(t, New(p.a).Hash(), New(p.b).Hash(), "%q vs %q", p.a, p.b)
	}
}

func TestHash_EmptyChains(t *testing.T) {
	var zero SegString
	assert.Equal(t, zero.Hash(), New("").Hash())
	assert.Equal(t, zero.Hash(), New("").Append("").Hash())
}
