package domain

import (
	"encoding/json"
	"fmt"
)

// Slice is a byte range [Start, End) inside fragment Fragment.
// It is serialized as a three element JSON array for compatibility with
// the assets.json format read by the game client.
type Slice struct {
	Fragment int
	Start    int
	End      int
}

// Len returns the number of bytes covered by the slice.
func (s Slice) Len() int {
	return s.End - s.Start
}

// MarshalJSON encodes the slice as [fragment, start, end].
func (s Slice) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{s.Fragment, s.Start, s.End})
}

// UnmarshalJSON decodes a [fragment, start, end] triple.
func (s *Slice) UnmarshalJSON(b []byte) error {
	var triple []int
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("slice: expected 3 elements, got %d", len(triple))
	}
	s.Fragment, s.Start, s.End = triple[0], triple[1], triple[2]
	return nil
}

// Reference lists the slices that, concatenated in order, reproduce an asset.
type Reference []Slice

// Size returns the total number of bytes referenced.
func (r Reference) Size() int {
	n := 0
	for _, s := range r {
		n += s.Len()
	}
	return n
}

// References maps a logical asset name to its Reference.
type References map[string]Reference
