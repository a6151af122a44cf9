// Package tal3av1 defines the wire messages of the tal3a.v1 API and the JSON
// codec they travel in.
package tal3av1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CodecName is registered with connect in place of the protobuf JSON codec.
const CodecName = "json"

// Codec encodes messages as plain JSON. Unknown fields and trailing data are
// rejected; an empty body decodes to the zero message.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	if dec.More() {
		return fmt.Errorf("decode %T: trailing data", msg)
	}
	return nil
}
