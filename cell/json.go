package cell

import "encoding/json"

// MarshalJSON encodes the stored value under a shared guard, so marshaling
// while the exclusive guard is live reports ErrMutablyBorrowed instead of
// racing the writer.
func (c *Cell[T]) MarshalJSON() ([]byte, error) {
	g, err := c.TryBorrow()
	if err != nil {
		return nil, err
	}
	defer g.Release()
	return json.Marshal(*g.Get())
}

// UnmarshalJSON decodes into the stored value under the exclusive guard.
// The cell must have been constructed with New before unmarshaling; a
// zero-value Cell has no slot to decode into.
func (c *Cell[T]) UnmarshalJSON(data []byte) error {
	g, err := c.TryBorrowMut()
	if err != nil {
		return err
	}
	defer g.Release()
	return json.Unmarshal(data, g.Get())
}
