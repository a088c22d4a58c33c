package gpu

import "context"

// Device is the hardware-agnostic adapter abstraction: buffer factory,
// queue, and a capability snapshot. Implementations must be safe for
// concurrent use by multiple drivers.
type Device interface {
	Limits() Limits
	CreateBuffer(ctx context.Context, size uint64) (Buffer, error)
	CreateBufferInit(ctx context.Context, data []byte) (Buffer, error)
	Queue() Queue
}

// refDevice is the pure-Go reference backend: it always succeeds, with
// limits sized from its DeviceOptions rather than a real adapter query.
type refDevice struct {
	limits Limits
	opts   deviceOptions
	queue  *refQueue
}

// RequestDevice simulates adapter enumeration and device handshake as two
// near-instant, cancellable suspension points, then returns a refDevice.
// The reference backend never fails to find an adapter or complete the
// handshake; ErrNoAdapter/ErrDeviceRequest exist for the interface contract
// a hardware backend must honor, and this constructor never returns them.
func RequestDevice(ctx context.Context, opts ...DeviceOption) (Device, error) {
	o := defaultDeviceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := awaitSuspensionPoint(ctx); err != nil { // adapter enumeration
		return nil, err
	}
	if err := awaitSuspensionPoint(ctx); err != nil { // device handshake
		return nil, err
	}

	o.logger.Debug().Uint64("simulated_vram", o.simulatedVRAM).Msg("gpu: adapter selected")

	dev := &refDevice{
		limits: Limits{MaxBufferBytes: o.simulatedVRAM, PreferredAlignment: o.alignment},
		opts:   o,
	}
	dev.queue = newRefQueue(o.logger)
	return dev, nil
}

// awaitSuspensionPoint models a real (but near-instant) channel receive so
// callers can genuinely select/cancel via ctx, per the ordering guarantees
// of the dispatch model.
func awaitSuspensionPoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ready := make(chan struct{})
	close(ready)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ready:
		return nil
	}
}

func (d *refDevice) Limits() Limits { return d.limits }

func (d *refDevice) CreateBuffer(ctx context.Context, size uint64) (Buffer, error) {
	if err := awaitSuspensionPoint(ctx); err != nil {
		return nil, err
	}
	if size > d.limits.MaxBufferBytes {
		return nil, ErrBufferCreate
	}
	return &refBuffer{data: make([]byte, size)}, nil
}

func (d *refDevice) CreateBufferInit(ctx context.Context, data []byte) (Buffer, error) {
	if err := awaitSuspensionPoint(ctx); err != nil {
		return nil, err
	}
	if uint64(len(data)) > d.limits.MaxBufferBytes {
		return nil, ErrBufferCreate
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &refBuffer{data: buf}, nil
}

func (d *refDevice) Queue() Queue { return d.queue }
