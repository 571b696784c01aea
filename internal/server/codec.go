package server

import "encoding/json"

// JSONCodec lets connect carry plain Go structs. It is registered under the
// "json" name so it replaces the protojson codec for application/json.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
