package cli

import (
	"errors"
	"sync/atomic"
)

// ErrBusy is returned when a submit is attempted while another one from the
// same screen is still running.
var ErrBusy = errors.New("operation already in progress")

// busyFlag stands in for a disabled submit button.
type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() error {
	if !b.v.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (b *busyFlag) release() { b.v.Store(false) }

// Busy reports whether a submit is in flight.
func (b *busyFlag) Busy() bool { return b.v.Load() }
