package retrieval

// candidate is one retrieved node and its distance from the query node.
type candidate struct {
	id int
	d  float64
}

// worse orders candidates by distance, then by id, larger being worse.
func worse(a, b candidate) bool {
	if a.d != b.d {
		return a.d > b.d
	}
	return a.id > b.id
}

// boundedHeap keeps the best `size` candidates seen so far. It is a max-heap
// on worse(); items[0] is unused so children of k sit at 2k and 2k+1.
type boundedHeap struct {
	items []candidate
	size  int
}

func newBoundedHeap(size int) *boundedHeap {
	h := &boundedHeap{size: size}
	h.items = make([]candidate, 1, size+1)
	return h
}

func (h *boundedHeap) reset(size int) {
	h.size = size
	h.items = h.items[:1]
}

func (h *boundedHeap) Len() int { return len(h.items) - 1 }

// Offer inserts c while the heap has room; once full, c replaces the current
// worst only if c is strictly better.
func (h *boundedHeap) Offer(c candidate) {
	if h.Len() < h.size {
		h.items = append(h.items, c)
		h.swim(h.Len())
		return
	}
	if h.size == 0 || !worse(h.items[1], c) {
		return
	}
	h.items[1] = c
	h.sink(1)
}

// IDs appends the ids currently held, in heap order, to dst.
func (h *boundedHeap) IDs(dst []int) []int {
	for _, c := range h.items[1:] {
		dst = append(dst, c.id)
	}
	return dst
}

func (h *boundedHeap) swim(k int) {
	for k > 1 && worse(h.items[k], h.items[k/2]) {
		h.items[k], h.items[k/2] = h.items[k/2], h.items[k]
		k /= 2
	}
}

func (h *boundedHeap) sink(k int) {
	n := h.Len()
	for 2*k <= n {
		j := 2 * k
		if j < n && worse(h.items[j+1], h.items[j]) {
			j++
		}
		if !worse(h.items[j], h.items[k]) {
			break
		}
		h.items[k], h.items[j] = h.items[j], h.items[k]
		k = j
	}
}
