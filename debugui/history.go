package debugui

// History is a fixed-size ring of samples, laid out for imgui plot widgets.
type History struct {
	samples []float32
	next    int
	filled  int
}

func NewHistory(size int) *History {
	if size <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Avg averages the samples pushed so far.
func (h *History) Avg() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, v := range h.Values() {
		total += v
	}
	return total / float32(h.filled)
}

func (h *History) Len() int {
	return h.filled
}

// Values returns the samples oldest first.
func (h *History) Values() []float32 {
	out := make([]float32, 0, h.filled)
	start := (h.next - h.filled + len(h.samples)) % len(h.samples)
	for i := range h.filled {
		out = append(out, h.samples[(start+i)%len(h.samples)])
	}
	return out
}
