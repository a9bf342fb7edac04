package mqtt

import "errors"

// Sentinel errors returned by the client.
var (
	// ErrNotConnected is returned when an operation needs a live connection.
	ErrNotConnected = errors.New("mqtt: client not connected")

	// ErrConnectionFailed wraps broker connection failures.
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrPublishFailed wraps publish failures, including oversize payloads.
	ErrPublishFailed = errors.New("mqtt: publish failed")

	ErrSubscribeFailed   = errors.New("mqtt: subscribe failed")
	ErrUnsubscribeFailed = errors.New("mqtt: unsubscribe failed")

	ErrInvalidQoS   = errors.New("mqtt: invalid QoS level (must be 0, 1, or 2)")
	ErrInvalidTopic = errors.New("mqtt: topic cannot be empty")
)
