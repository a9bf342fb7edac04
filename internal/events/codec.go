package events

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/nerrad567/device-inventory/internal/device"
)

// Encoding names accepted by NewCodec and events.encoding in config.
const (
	EncodingJSON = "json"
	EncodingCBOR = "cbor"
)

// Codec turns a committed change into a message payload.
type Codec interface {
	Encode(change device.Change) ([]byte, error)
	Decode(data []byte) (device.Change, error)
	ContentType() string
}

// NewCodec returns the codec for encoding, or ErrUnknownEncoding.
func NewCodec(encoding string) (Codec, error) {
	switch encoding {
	case "", EncodingJSON:
		return JSONCodec{}, nil
	case EncodingCBOR:
		return CBORCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}

// JSONCodec encodes changes as JSON using the device package's field names.
type JSONCodec struct{}

func (JSONCodec) Encode(change device.Change) ([]byte, error) {
	return json.Marshal(change)
}

func (JSONCodec) Decode(data []byte) (device.Change, error) {
	var change device.Change
	if err := json.Unmarshal(data, &change); err != nil {
		return device.Change{}, fmt.Errorf("decoding json change: %w", err)
	}
	return change, nil
}

func (JSONCodec) ContentType() string { return "application/json" }

// cborEncMode sorts map keys canonically so identical changes always
// produce identical bytes.
var cborEncMode cbor.EncMode

var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR decoder mode: %v", err))
	}
}

// CBORCodec encodes changes as canonical CBOR. Field names follow the
// json struct tags.
type CBORCodec struct{}

func (CBORCodec) Encode(change device.Change) ([]byte, error) {
	return cborEncMode.Marshal(change)
}

func (CBORCodec) Decode(data []byte) (device.Change, error) {
	var change device.Change
	if err := cborDecMode.Unmarshal(data, &change); err != nil {
		return device.Change{}, fmt.Errorf("decoding cbor change: %w", err)
	}
	return change, nil
}

func (CBORCodec) ContentType() string { return "application/cbor" }
