package model

import "github.com/golang/geo/r3"

// DisableBit is a bitfield of simulation features that can be switched off
// globally for a model.
type DisableBit uint32

// DisableSensor turns the whole sensor subsystem into a no-op: every stage
// evaluation returns its input state unchanged.
const (
	DisableSensor DisableBit = 1 << iota
)

// Options holds global model options consulted by the sensor layer.
type Options struct {
	DisableFlags DisableBit

	// Magnetic is the global magnetic field read by magnetometer sensors,
	// in world coordinates.
	Magnetic r3.Vector
}

// SensorDisabled reports whether the sensor subsystem is globally disabled.
func (o Options) SensorDisabled() bool {
	return o.DisableFlags&DisableSensor != 0
}
