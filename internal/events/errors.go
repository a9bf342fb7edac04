package events

import "errors"

// ErrUnknownEncoding is returned by NewCodec for anything but json or cbor.
var ErrUnknownEncoding = errors.New("events: unknown encoding")
