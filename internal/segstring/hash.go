package segstring

// FNV-1a constants. The combining scheme only needs to be deterministic and
// order-sensitive; no external format depends on the resulting values.
const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

// Hash returns a content hash of the chain. Chains that are Equal hash
// identically, however their segment boundaries fall, because the bytes are
// combined in the same right-to-left, tail-to-head order the comparison
// algorithms traverse.
func (ss SegString) Hash() uint64 {
	h := hashOffset
	ss.eachBackward(func(part string) bool {
		for i := len(part) - 1; i >= 0; i-- {
			h = (h ^ uint64(part[i])) * hashPrime
		}
		return true
	})
	return h
}
