package gpu

import "github.com/rs/zerolog"

const defaultSimulatedVRAM = 2 << 30 // 2 GiB

// DeviceOption configures RequestDevice.
type DeviceOption func(*deviceOptions)

type deviceOptions struct {
	simulatedVRAM uint64
	alignment     uint32
	logger        zerolog.Logger
}

func defaultDeviceOptions() deviceOptions {
	return deviceOptions{
		simulatedVRAM: defaultSimulatedVRAM,
		alignment:     256,
		logger:        zerolog.Nop(),
	}
}

// WithSimulatedVRAM sets the reference backend's advertised MaxBufferBytes
// (default 2 GiB). Ignored by a hardware-backed Device implementation.
func WithSimulatedVRAM(bytes uint64) DeviceOption {
	return func(o *deviceOptions) { o.simulatedVRAM = bytes }
}

// WithAlignment sets the reference backend's advertised
// PreferredAlignment (default 256 bytes).
func WithAlignment(bytes uint32) DeviceOption {
	return func(o *deviceOptions) { o.alignment = bytes }
}

// WithLogger attaches a logger to the device and the drivers it is passed
// to. The default is zerolog.Nop(): silent unless a caller opts in.
func WithLogger(logger zerolog.Logger) DeviceOption {
	return func(o *deviceOptions) { o.logger = logger }
}
