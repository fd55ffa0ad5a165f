package sensors

// writer accumulates parallel lists of expanded buffer addresses and values
// for one kind group. A sensor of width n contributes n consecutive
// addresses starting at its base address.
type writer struct {
	adrs []int
	vals []float64
}

// put records one sensor's output components starting at its base address.
func (w *writer) put(adr int, vals ...float64) {
	for k, v := range vals {
		w.adrs = append(w.adrs, adr+k)
		w.vals = append(w.vals, v)
	}
}

// scatter writes vals into dst at the given addresses. Model compilation
// guarantees the addresses of one stage are in range and mutually distinct.
func scatter(dst []float64, adrs []int, vals []float64) {
	for i, a := range adrs {
		dst[a] = vals[i]
	}
}
