package pool

import "sync"

// Digit slices are the per-call scratch space of the radix encoder: one int
// per extracted digit. Pooling them keeps repeated encode calls allocation-free.
var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves and resizes an int slice from the pool.
//
// The returned slice has the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function (typically with defer)
// to return the slice to the pool.
//
// Example:
//
//	digits, cleanup := pool.GetIntSlice(maxDigits)
//	defer cleanup()
//	// Use digits slice...
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { intSlicePool.Put(ptr) }
}
