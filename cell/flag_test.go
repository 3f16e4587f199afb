package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Flag_StateTable walks the acquire table exhaustively: shared
// acquire fails iff the exclusive borrow is live, exclusive acquire fails
// iff any borrow is live.
func Test_Flag_StateTable(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(f *Flag)
		canBorrow    bool
		canBorrowMut bool
	}{
		{"unborrowed", func(*Flag) {}, true, true},
		{"one reader", func(f *Flag) { f.Borrow() }, true, false},
		{"three readers", func(f *Flag) { f.Borrow(); f.Borrow(); f.Borrow() }, true, false},
		{"writer", func(f *Flag) { f.BorrowMut() }, false, false},
		{"reader released", func(f *Flag) { f.Borrow(); f.DropBorrow() }, true, true},
		{"writer released", func(f *Flag) { f.BorrowMut(); f.DropBorrowMut() }, true, true},
		{"one of two readers released", func(f *Flag) { f.Borrow(); f.Borrow(); f.DropBorrow() }, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			tt.setup(&f)
			require.Equal(t, tt.canBorrow, f.CanBorrow())
			require.Equal(t, tt.canBorrowMut, f.CanBorrowMut())
		})
	}
}

func Test_Flag_Counters(t *testing.T) {
	var f Flag
	require.Equal(t, 0, f.Reading())
	require.False(t, f.Writing())

	f.Borrow()
	f.Borrow()
	require.Equal(t, 2, f.Reading())

	f.DropBorrow()
	f.DropBorrow()
	f.BorrowMut()
	require.True(t, f.Writing())
	require.Equal(t, 0, f.Reading())
	f.DropBorrowMut()
}

// Test_Flag_UnbalancedReleasePanics verifies release without a matching
// borrow is reported, not absorbed.
func Test_Flag_UnbalancedReleasePanics(t *testing.T) {
	var f Flag
	require.Panics(t, func() { f.DropBorrow() })
	require.Panics(t, func() { f.DropBorrowMut() })

	f.Borrow()
	require.Panics(t, func() { f.DropBorrowMut() }, "shared borrow cannot be released as exclusive")
}
