package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIntSlice(t *testing.T) {
	digits, cleanup := GetIntSlice(10)
	require.Len(t, digits, 10)

	for i := range digits {
		digits[i] = i
	}
	cleanup()

	// A fresh request must honor the requested length regardless of what the
	// pooled slice previously held.
	digits2, cleanup2 := GetIntSlice(4)
	defer cleanup2()
	require.Len(t, digits2, 4)
}

func TestGetIntSlice_ZeroSize(t *testing.T) {
	digits, cleanup := GetIntSlice(0)
	defer cleanup()
	require.Len(t, digits, 0)
}

func TestGetIntSlice_GrowsBeyondPooledCapacity(t *testing.T) {
	small, cleanup := GetIntSlice(2)
	require.Len(t, small, 2)
	cleanup()

	large, cleanup2 := GetIntSlice(4096)
	defer cleanup2()
	require.Len(t, large, 4096)
}
