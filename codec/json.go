package codec

import "encoding/json"

// JSON encodes frame bodies with encoding/json.
//
// Summaries hold unsigned counters, booleans and the boundary elements, so
// they round-trip exactly whenever the element type does. Use it where the
// smallest dependency footprint matters; GoJSON produces identical bodies.
type JSON struct{}

// Marshal encodes v.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is the codec used when Encode is given none.
var Default Codec = GoJSON{}
