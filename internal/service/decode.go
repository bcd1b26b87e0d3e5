package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/academyhub/academy-client/models"
)

// decodePayload decodes an envelope's primary payload into v, falling back to
// the named passthrough field. The backend is inconsistent here: some
// endpoints wrap their payload in "data", others emit a top-level key such as
// "resources" or "submissions".
func decodePayload(env models.Envelope, field string, v any) error {
	err := env.DecodeData(v)
	if !errors.Is(err, models.ErrNoPayload) {
		return err
	}
	if field == "" {
		return err
	}

	ferr := env.DecodeField(field, v)
	if errors.Is(ferr, models.ErrNoPayload) {
		return models.ErrNoPayload
	}
	return ferr
}

// requirePayload is decodePayload for endpoints whose reply is useless
// without the payload; absence becomes [ErrMissingPayload].
func requirePayload(env models.Envelope, field string, v any) error {
	err := decodePayload(env, field, v)
	if errors.Is(err, models.ErrNoPayload) {
		return fmt.Errorf("%w: %q", ErrMissingPayload, field)
	}
	return err
}

// requireFlat decodes like requirePayload but with a third fallback: the
// passthrough keys themselves form the payload. The AI endpoints answer this
// way, e.g. {"success": true, "answer": "...", "processing_time": 1.2}.
func requireFlat(env models.Envelope, field string, v any) error {
	err := decodePayload(env, field, v)
	if !errors.Is(err, models.ErrNoPayload) {
		return err
	}
	if len(env.Extra) == 0 {
		return fmt.Errorf("%w: %q", ErrMissingPayload, field)
	}

	raw, merr := json.Marshal(env)
	if merr != nil {
		return merr
	}
	return json.Unmarshal(raw, v)
}
