// Package model holds the static description of a compiled simulation scene:
// per-sensor descriptor arrays, the static joint/body/geom/site/camera tables
// the sensor kernels read, and global options. A Model is built once by scene
// compilation and never mutated during stepping.
package model

import "gonum.org/v1/gonum/num/quat"

// Model is the static scene description. All Sensor* slices are parallel
// arrays indexed by sensor; the remaining tables are indexed by the id kind
// their name implies. Descriptor consistency (non-overlapping addresses,
// widths matching kinds) is the compiler's responsibility; CheckSensors
// re-verifies it on demand.
type Model struct {
	Opt Options

	// sensor descriptors
	SensorType    []SensorType
	SensorObjType []ObjectType
	SensorObjID   []int
	SensorRefType []ObjectType
	SensorRefID   []int // WorldRefID means no reference
	SensorAdr     []int
	SensorStage   []Stage

	// joint addressing into the generalized position/velocity vectors
	JntQposAdr []int
	JntDofAdr  []int

	// local orientation offsets relative to the owning body's joint frame
	BodyIQuat []quat.Number
	GeomQuat  []quat.Number
	SiteQuat  []quat.Number
	CamQuat   []quat.Number

	// object ownership
	GeomBodyID []int
	SiteBodyID []int
	CamBodyID  []int

	// camera intrinsics
	CamFOVY       []float64    // vertical field of view, degrees
	CamResolution [][2]int     // pixels, (horizontal, vertical)
	CamSensorSize [][2]float64 // physical sensor size; zero means "use fovy"
	CamIntrinsic  [][4]float64 // focal lengths and principal point

	// NSensorData is the length of the flat sensor output buffer.
	NSensorData int
}

// NSensor returns the number of sensors in the model.
func (m *Model) NSensor() int {
	return len(m.SensorType)
}
