package collision

import (
	"fmt"
	"sync/atomic"
)

var hashCounter = uint64(0)

type HashValue uint32

type DefaultHash struct {
	hash HashValue
}

// Hash lazily assigns a process-unique, non-zero id.
func (h *DefaultHash) Hash() HashValue {
	if h.hash == 0 {
		h.hash = HashValue(atomic.AddUint64(&hashCounter, 1))
		if h.hash == 0 {
			panic("Hash overflowed")
		}
	}
	return h.hash
}

func (h *DefaultHash) Reset() {
	h.hash = 0
}

// HashPair identifies an unordered pair of colliders, smaller hash first.
type HashPair struct {
	A, B HashValue
}

func newPair(a, b HashValue) HashPair {
	if a > b {
		return HashPair{b, a}
	}
	return HashPair{a, b}
}

func (p HashPair) String() string {
	return fmt.Sprintf("#%d+%d", p.A, p.B)
}
