// Package ioport provides small example peripherals implementing the
// z80.Device interface, registered by cmd/z80run on port 0xFE in both
// its headless and monitor modes.
package ioport

import "sync"

// LatchDevice is the simplest possible peripheral: the last byte
// written to it is the byte read back. It demonstrates port
// registration without modeling any real hardware behavior.
type LatchDevice struct {
	mu    sync.Mutex
	value byte
	name  string
}

// NewLatchDevice returns a LatchDevice reading as zero until the first
// Out. name is used only for logging by callers that care to.
func NewLatchDevice(name string) *LatchDevice {
	return &LatchDevice{name: name}
}

// Name reports the label the device was constructed with.
func (d *LatchDevice) Name() string { return d.name }

// In returns the last value written to port, or zero if none yet.
func (d *LatchDevice) In(port uint16) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Out latches value for subsequent In calls.
func (d *LatchDevice) Out(port uint16, value byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = value
}
