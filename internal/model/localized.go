package model

import "encoding/json"

// LocalizedText holds up to three language variants of a display string:
// the base language plus two translations. No variant is mandatory.
type LocalizedText struct {
	Base string `json:"base,omitempty"`
	Alt1 string `json:"alt1,omitempty"`
	Alt2 string `json:"alt2,omitempty"`
}

// UnmarshalJSON accepts both the structured shape and the legacy bare-string
// format still present in older remote documents. A bare string becomes the
// base-language variant. Normalizing here keeps every consumer downstream of
// the load boundary working with a single shape.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LocalizedText{Base: s}
		return nil
	}

	type plain LocalizedText
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = LocalizedText(p)
	return nil
}

// IsZero reports whether no variant is populated.
func (t LocalizedText) IsZero() bool {
	return t.Base == "" && t.Alt1 == "" && t.Alt2 == ""
}
