package service

import (
	"encoding/json"
)

// jsonCodec is a Connect codec for plain Go structs. It replaces the built-in
// protobuf JSON codec, so messages are ordinary JSON objects.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
