// Package codec frames the accumulator state that workers send to a
// coordinator.
//
// sortcheck never moves bytes between processes itself. A rank encodes its
// summary into a frame, ships it over its own transport, and the coordinator
// decodes every frame it gathered. Frames are self-describing: the header
// names the codec that encoded the body, so ranks built with different
// codecs can report to the same coordinator.
//
// Frame layout:
//
//	+------+-----------+---------------------------------------+
//	| n    | name      | body                                  |
//	| 1 B  | n bytes   | {"round":..,"rank":..,"payload":..}   |
//	+------+-----------+---------------------------------------+
package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCodec is returned when a frame names a codec that is not built in.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrShortFrame is returned when a frame ends inside its header.
	ErrShortFrame = errors.New("short frame")
)

// Codec encodes/decodes frame bodies.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Frame is what one rank reports for one verification round.
type Frame[P any] struct {
	Round   uint64 `json:"round"`
	Rank    int    `json:"rank"`
	Payload P      `json:"payload"`
}

// Encode frames payload for the coordinator. A nil codec selects Default.
func Encode[P any](c Codec, round uint64, rank int, payload P) ([]byte, error) {
	if c == nil {
		c = Default
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name %q too long", name)
	}

	body, err := c.Marshal(Frame[P]{Round: round, Rank: rank, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("codec %s: encode rank %d: %w", name, rank, err)
	}

	out := make([]byte, 0, 1+len(name)+len(body))
	out = append(out, byte(len(name)))
	out = append(out, name...)
	return append(out, body...), nil
}

// Decode reads a frame written by Encode, using the codec named in its header.
func Decode[P any](data []byte) (Frame[P], error) {
	var f Frame[P]

	name, body, err := split(data)
	if err != nil {
		return f, err
	}
	c, ok := ByName(name)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	if err := c.Unmarshal(body, &f); err != nil {
		return f, fmt.Errorf("codec %s: decode: %w", name, err)
	}
	return f, nil
}

// CodecName returns the name of the codec a frame was encoded with.
func CodecName(data []byte) (string, error) {
	name, _, err := split(data)
	return name, err
}

func split(data []byte) (string, []byte, error) {
	if len(data) == 0 {
		return "", nil, ErrShortFrame
	}
	n := int(data[0])
	if len(data) < 1+n {
		return "", nil, fmt.Errorf("%w: header wants %d name bytes, have %d", ErrShortFrame, n, len(data)-1)
	}
	return string(data[1 : 1+n]), data[1+n:], nil
}
