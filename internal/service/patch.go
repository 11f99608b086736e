package service

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// patch copies *src into *dst when the field was present in the payload
func patch[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// NullableID is a reference in a partial update. An omitted field leaves the
// reference alone, an explicit null clears it and a UUID replaces it.
type NullableID struct {
	Set   bool
	Value *uuid.UUID
}

// SomeID returns a NullableID that replaces the reference with id
func SomeID(id uuid.UUID) NullableID {
	return NullableID{Set: true, Value: &id}
}

// NullID clears the reference
var NullID = NullableID{Set: true}

// IsNull reports whether the payload carried an explicit null
func (n NullableID) IsNull() bool {
	return n.Set && n.Value == nil
}

// UnmarshalJSON only runs for keys present in the payload, which is how Set is tracked
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func patchRef(dst **uuid.UUID, src NullableID) {
	if !src.Set {
		return
	}
	if src.Value == nil {
		*dst = nil
		return
	}
	id := *src.Value
	*dst = &id
}
