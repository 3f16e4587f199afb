package rc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Rc_CloneDropOrder is the canonical lifecycle: one handle plus two
// clones, dropped in creation order; the finalizer fires exactly once, at
// the third drop.
func Test_Rc_CloneDropOrder(t *testing.T) {
	finalized := 0
	h := NewFinalizer(42, func(v int) {
		finalized++
		require.Equal(t, 42, v)
	})
	require.Equal(t, 1, h.Refs())

	c1 := h.Clone()
	c2 := h.Clone()
	require.Equal(t, 3, h.Refs())

	h.Drop()
	require.Equal(t, 0, finalized)
	c1.Drop()
	require.Equal(t, 0, finalized)
	c2.Drop()
	require.Equal(t, 1, finalized)
}

// Test_Rc_DropInAnyOrder verifies teardown is order-independent.
func Test_Rc_DropInAnyOrder(t *testing.T) {
	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 0},
		{2, 0, 1},
	}
	for _, order := range orders {
		finalized := 0
		h := NewFinalizer("v", func(string) { finalized++ })
		handles := []Handle[string]{h, h.Clone(), h.Clone()}

		for i, idx := range order {
			handles[idx].Drop()
			if i < len(order)-1 {
				require.Equal(t, 0, finalized, "finalizer ran before last drop (order %v)", order)
			}
		}
		require.Equal(t, 1, finalized, "order %v", order)
	}
}

// Test_Rc_ValueSharedAcrossClones verifies all handles alias one slot.
func Test_Rc_ValueSharedAcrossClones(t *testing.T) {
	h := New(1)
	c := h.Clone()

	*h.Get() = 2
	require.Equal(t, 2, *c.Get())
	require.Same(t, h.Get(), c.Get())

	c.Drop()
	require.Equal(t, 2, *h.Get(), "value outlives sibling drops")
	h.Drop()
}

// Test_Rc_UseAfterDropPanics verifies a dropped handle poisons itself.
func Test_Rc_UseAfterDropPanics(t *testing.T) {
	h := New(42)
	c := h.Clone()
	h.Drop()

	require.PanicsWithValue(t, "rc: use of dropped handle", func() { h.Get() })
	require.PanicsWithValue(t, "rc: use of dropped handle", func() { h.Drop() })
	require.PanicsWithValue(t, "rc: use of dropped handle", func() { h.Clone() })

	// The surviving clone is unaffected.
	require.Equal(t, 42, *c.Get())
	c.Drop()
}

// Test_Rc_NoFinalizer verifies Drop works without a finalizer.
func Test_Rc_NoFinalizer(t *testing.T) {
	h := New([]string{"a"})
	c := h.Clone()
	h.Drop()
	c.Drop()
}

// Test_Rc_OwnerCheck verifies the opt-in cross-goroutine assertion.
func Test_Rc_OwnerCheck(t *testing.T) {
	prev := checkOwner
	checkOwner = true
	defer func() { checkOwner = prev }()

	h := New(42)
	defer h.Drop()

	// Same goroutine: fine.
	require.Equal(t, 42, *h.Get())

	// Foreign goroutine: panic.
	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		h.Get()
	}()
	require.Equal(t, "rc: Rc handle used outside its owning goroutine", <-done)
}

// Test_Rc_OwnerCheckDisabledByDefault verifies zero-cost default: handles
// created without the toggle never record an owner.
func Test_Rc_OwnerCheckDisabledByDefault(t *testing.T) {
	prev := checkOwner
	checkOwner = false
	defer func() { checkOwner = prev }()

	h := New(42)
	defer h.Drop()

	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		_ = *h.Get() // single-goroutine contract is the caller's problem here
	}()
	require.Nil(t, <-done)
}
