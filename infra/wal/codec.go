// Package wal provides pluggable codecs for the payload carried
// inside each infra/wal/entry.Record. Framing, CRC, and segment
// rotation are entry's job; this package only turns a place/cancel/
// modify intent into bytes and back.
package wal

import (
	"encoding/json"
)

// Codec turns a single intent value into record payload bytes and back.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, out any) error
}

// ---------- JSON ----------

// JSONCodec requires no generated code; it is the default used by
// tests and local development.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}
