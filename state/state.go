// Package state holds the per-step snapshot produced by the kinematics and
// dynamics solvers and consumed by the sensor layer. Everything here is a
// plain array of already-computed quantities; nothing in this package does
// physics.
package state

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// State is one step's kinematic and dynamic snapshot. World orientation
// matrices have the frame's axes as columns. The X-prefixed body arrays
// describe the joint ("extended") frames; the XI-prefixed ones describe the
// inertial-aligned frames.
type State struct {
	// Time is the simulation time at this step.
	Time float64

	XPos  []r3.Vector
	XQuat []quat.Number
	XMat  []mgl64.Mat3

	XIPos []r3.Vector
	XIMat []mgl64.Mat3

	GeomXPos []r3.Vector
	GeomXMat []mgl64.Mat3

	SiteXPos []r3.Vector
	SiteXMat []mgl64.Mat3

	CamXPos []r3.Vector
	CamXMat []mgl64.Mat3

	// generalized coordinates
	QPos []float64
	QVel []float64

	ActuatorLength   []float64
	ActuatorVelocity []float64
	ActuatorForce    []float64

	// QfrcActuator is the actuator force mapped into joint space.
	QfrcActuator []float64

	// SubtreeCOM is the center of mass of each body's kinematic subtree.
	SubtreeCOM []r3.Vector

	// SensorData is the flat sensor output buffer.
	SensorData []float64
}

// CloneSensorData returns a copy of the state sharing every array except
// SensorData, which is freshly allocated and copied. Stage evaluation writes
// into the clone's buffer so the input state is never mutated.
func (s *State) CloneSensorData() *State {
	out := *s
	out.SensorData = make([]float64, len(s.SensorData))
	copy(out.SensorData, s.SensorData)
	return &out
}
