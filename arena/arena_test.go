package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newArena(t *testing.T, slotSize, numSlots int) *Arena {
	t.Helper()
	a, err := New(slotSize, numSlots)
	require.NoError(t, err)
	t.Cleanup(func() {
		// Best-effort teardown; tests that close explicitly hit the
		// idempotent path here.
		_ = a.Close()
	})
	return a
}

// Test_Arena_AllocWriteRead verifies a slot round trip.
func Test_Arena_AllocWriteRead(t *testing.T) {
	a := newArena(t, 64, 4)

	ref, buf, err := a.Alloc()
	require.NoError(t, err)
	require.Len(t, buf, 64)

	copy(buf, "hello")
	got, err := a.Bytes(ref)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got[:5])

	require.NoError(t, a.Free(ref))
}

// Test_Arena_SlotsAreDisjoint verifies writes to one slot never bleed
// into a neighbor.
func Test_Arena_SlotsAreDisjoint(t *testing.T) {
	a := newArena(t, 8, 3)

	r1, b1, err := a.Alloc()
	require.NoError(t, err)
	r2, b2, err := a.Alloc()
	require.NoError(t, err)

	for i := range b1 {
		b1[i] = 0xAA
	}
	for _, c := range b2 {
		require.EqualValues(t, 0, c)
	}

	require.NoError(t, a.Free(r1))
	require.NoError(t, a.Free(r2))
}

// Test_Arena_FullThenReuse verifies ErrFull at capacity and LIFO reuse
// after a free.
func Test_Arena_FullThenReuse(t *testing.T) {
	a := newArena(t, 16, 2)

	r1, _, err := a.Alloc()
	require.NoError(t, err)
	r2, _, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, 2, a.Live())

	_, _, err = a.Alloc()
	require.ErrorIs(t, err, ErrFull)

	require.NoError(t, a.Free(r2))
	r3, _, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, r2, r3, "freed slot is recycled LIFO")

	require.NoError(t, a.Free(r1))
	require.NoError(t, a.Free(r3))
	require.Equal(t, 0, a.Live())
}

// Test_Arena_DoubleFree verifies the allocation-state check.
func Test_Arena_DoubleFree(t *testing.T) {
	a := newArena(t, 16, 2)

	ref, _, err := a.Alloc()
	require.NoError(t, err)
	require.NoError(t, a.Free(ref))
	require.ErrorIs(t, a.Free(ref), ErrNotAllocated)
}

// Test_Arena_BadRef verifies out-of-range references are rejected.
func Test_Arena_BadRef(t *testing.T) {
	a := newArena(t, 16, 2)

	require.ErrorIs(t, a.Free(-1), ErrBadRef)
	require.ErrorIs(t, a.Free(99), ErrBadRef)

	_, err := a.Bytes(2)
	require.ErrorIs(t, err, ErrBadRef)

	// In-range but never allocated.
	_, err = a.Bytes(1)
	require.ErrorIs(t, err, ErrNotAllocated)
}

// Test_Arena_CloseWithLiveSlots verifies teardown is refused while
// references are outstanding.
func Test_Arena_CloseWithLiveSlots(t *testing.T) {
	a := newArena(t, 16, 2)

	ref, _, err := a.Alloc()
	require.NoError(t, err)
	require.ErrorIs(t, a.Close(), ErrLive)

	require.NoError(t, a.Free(ref))
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "close is idempotent")

	_, _, err = a.Alloc()
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, a.Free(ref), ErrClosed)
}

// Test_Arena_InvalidGeometry verifies constructor validation.
func Test_Arena_InvalidGeometry(t *testing.T) {
	_, err := New(0, 10)
	require.Error(t, err)
	_, err = New(16, 0)
	require.Error(t, err)
	_, err = New(-1, -1)
	require.Error(t, err)
}

func Benchmark_Arena_AllocFree(b *testing.B) {
	a, err := New(256, 1024)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		if err := a.Free(ref); err != nil {
			b.Fatal(err)
		}
	}
}
