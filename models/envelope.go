package models

import (
	"encoding/json"
	"errors"
)

// ErrNoPayload is returned by [Envelope.DecodeData] and [Envelope.DecodeField]
// when the requested payload is absent from the envelope.
var ErrNoPayload = errors.New("envelope carries no payload")

// Envelope is the normalized shape every API call resolves to. The backend
// replies with several ad-hoc JSON layouts; the envelope pins down the three
// fields all of them share and preserves everything else in Extra so no
// backend-supplied information is lost.
//
// A reply without an explicit "success" key is treated as successful: the
// transport layer only decodes bodies of 2xx responses into envelopes, and
// several backend endpoints omit the flag on success.
type Envelope struct {
	// Success reports whether the backend considered the operation successful.
	Success bool

	// Data is the primary payload ("data" key), kept raw so each caller can
	// decode it into its own typed model.
	Data json.RawMessage

	// Message is the human-readable outcome description. Populated from the
	// backend's "message" key, falling back to its "error" key.
	Message string

	// Extra holds every backend-supplied top-level key that is not one of the
	// three known fields (e.g. "resources", "submissions", "authenticated").
	// Nil when the reply carried no extra keys.
	Extra map[string]json.RawMessage
}

// DecodeData unmarshals the envelope's data payload into v.
// Returns [ErrNoPayload] if the envelope has no data.
func (e Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return ErrNoPayload
	}
	return json.Unmarshal(e.Data, v)
}

// DecodeField unmarshals the named passthrough field from Extra into v.
// Returns [ErrNoPayload] if the field is absent.
func (e Envelope) DecodeField(key string, v any) error {
	raw, ok := e.Extra[key]
	if !ok {
		return ErrNoPayload
	}
	return json.Unmarshal(raw, v)
}

// UnmarshalJSON implements json.Unmarshaler. Known keys ("success", "data",
// "message", "error") populate the fixed fields; every other key is kept
// verbatim in Extra.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*e = Envelope{Success: true}

	var message, errMessage string
	for key, value := range raw {
		switch key {
		case "success":
			if err := json.Unmarshal(value, &e.Success); err != nil {
				return err
			}
		case "data":
			e.Data = value
		case "message":
			if err := json.Unmarshal(value, &message); err != nil {
				return err
			}
		case "error":
			if err := json.Unmarshal(value, &errMessage); err != nil {
				return err
			}
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]json.RawMessage, len(raw))
			}
			e.Extra[key] = value
		}
	}

	e.Message = message
	if e.Message == "" {
		e.Message = errMessage
	}

	return nil
}

// MarshalJSON implements json.Marshaler. The fixed fields and the passthrough
// keys are merged back into a single flat object, so an envelope survives a
// decode/encode round trip without losing backend-specific extras.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+3)
	for key, value := range e.Extra {
		out[key] = value
	}
	out["success"] = e.Success
	if len(e.Data) > 0 {
		out["data"] = e.Data
	}
	if e.Message != "" {
		out["message"] = e.Message
	}
	return json.Marshal(out)
}
