package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes the three states a JSON field can be in:
// absent from the payload, present as an explicit null, or present as a
// string. encoding/json only invokes UnmarshalJSON for keys that appear
// in the payload, which is what makes the "absent" state observable.
type OptionalString struct {
	// Set reports whether the field appeared in the payload at all.
	Set bool

	// Valid reports whether the field held a string (as opposed to null).
	// Meaningless unless Set is true.
	Valid bool

	// Value is the decoded string when Set && Valid.
	Value string
}

// OptionalStringOf returns a present, non-null OptionalString holding v.
func OptionalStringOf(v string) OptionalString {
	return OptionalString{Set: true, Valid: true, Value: v}
}

// OptionalStringNull returns a present, explicit-null OptionalString.
func OptionalStringNull() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
