package gpu

import "errors"

var (
	// ErrNoAdapter is returned by RequestDevice when no adapter, simulated
	// or otherwise, is available.
	ErrNoAdapter = errors.New("gpu: no adapter available")
	// ErrDeviceRequest is returned when the device handshake fails.
	ErrDeviceRequest = errors.New("gpu: device request failed")
	// ErrUnsupportedFeature is returned when a caller asks the device for a
	// capability it does not advertise in its Limits.
	ErrUnsupportedFeature = errors.New("gpu: unsupported feature")
	// ErrBufferCreate is returned when buffer allocation fails, e.g. a
	// requested size exceeds Limits.MaxBufferBytes.
	ErrBufferCreate = errors.New("gpu: buffer creation failed")
	// ErrBufferMap is returned when a map-read is attempted on a released
	// buffer, or fails for any other device-side reason.
	ErrBufferMap = errors.New("gpu: buffer map failed")
)
