package qchan

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
)

// New builds a non-temporal channel and returns its first sender/receiver
// pair. The receiver takes index 0; further receivers are obtained via
// Clone or GetObserver.
func New[T any](opts ...Option) (*Sender[T], *Receiver[T]) {
	cfg := newConfig(opts)

	var v buffer.Variant[T]
	switch {
	case cfg.dispatch && cfg.bounded != nil:
		v = buffer.NewBoundedBroadcastVariant[T](*cfg.bounded)
	case cfg.dispatch:
		v = buffer.NewUnboundedBroadcastVariant[T]()
	case cfg.bounded != nil:
		v = buffer.NewBoundedVariant[T](*cfg.bounded)
	default:
		v = buffer.NewUnboundedVariant[T]()
	}

	c := newContainer(v)
	c.senderCount = 1
	c.receiverCount = 1
	v.NewReceiver(0)

	return newSender(c, "qchan.new"), newReceiver(c, 0, "qchan.new")
}

// NewTimeSeries builds a temporal channel whose items are released into
// the readable tail only once the gate derived from dataOrigin/speed
// admits them.
func NewTimeSeries[T buffer.HasDataTime](dataOrigin time.Time, speed float64, opts ...Option) (*Sender[T], *Receiver[T]) {
	cfg := newConfig(opts)

	var v buffer.Variant[T]
	switch {
	case cfg.dispatch && cfg.bounded != nil:
		v = buffer.NewTSBoundedDispatchVariant[T](dataOrigin, speed, *cfg.bounded)
	case cfg.dispatch:
		v = buffer.NewTSUnboundedDispatchVariant[T](dataOrigin, speed)
	case cfg.bounded != nil:
		v = buffer.NewTSBoundedPreVariant[T](dataOrigin, speed, *cfg.bounded)
	default:
		v = buffer.NewTSUnboundedPreVariant[T](dataOrigin, speed)
	}

	c := newContainer(v)
	c.senderCount = 1
	c.receiverCount = 1
	v.NewReceiver(0)

	return newSender(c, "qchan.newTimeSeries"), newReceiver(c, 0, "qchan.newTimeSeries")
}
