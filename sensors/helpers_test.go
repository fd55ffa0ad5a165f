package sensors

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/spatialmath"
	"github.com/tumultousRamen/mujoco/state"
)

var (
	qIdent = spatialmath.QuatIdentity()
	// 90 degree rotations about z and x
	qz90 = quat.Number{Real: math.Sqrt2 / 2, Kmag: math.Sqrt2 / 2}
	qx90 = quat.Number{Real: math.Sqrt2 / 2, Imag: math.Sqrt2 / 2}
)

// testModel returns a three-body scene (world, a body rotated 90 degrees
// about z, a plain body) with one geom, three sites, one camera, a hinge and
// a ball joint, and two actuators, but no sensors attached yet; tests add the
// sensors they need via addSensor.
func testModel() *model.Model {
	return &model.Model{
		Opt: model.Options{Magnetic: r3.Vector{X: 0, Y: -0.5, Z: 0}},

		JntQposAdr: []int{0, 1},
		JntDofAdr:  []int{0, 1},

		BodyIQuat: []quat.Number{qIdent, qIdent, qIdent},
		GeomQuat:  []quat.Number{qx90},
		SiteQuat:  []quat.Number{qIdent, qIdent, qIdent},
		CamQuat:   []quat.Number{qIdent},

		GeomBodyID: []int{1},
		SiteBodyID: []int{1, 2, 0},
		CamBodyID:  []int{2},

		CamFOVY:       []float64{45},
		CamResolution: [][2]int{{640, 480}},
		CamSensorSize: [][2]float64{{0, 0}},
		CamIntrinsic:  [][4]float64{{0.05, 0.05, 0, 0}},
	}
}

// addSensor appends a descriptor of kind t, assigns it the next free buffer
// range, and returns its base address.
func addSensor(m *model.Model, t model.SensorType, objType model.ObjectType, objID int,
	refType model.ObjectType, refID int,
) int {
	adr := m.NSensorData
	m.SensorType = append(m.SensorType, t)
	m.SensorObjType = append(m.SensorObjType, objType)
	m.SensorObjID = append(m.SensorObjID, objID)
	m.SensorRefType = append(m.SensorRefType, refType)
	m.SensorRefID = append(m.SensorRefID, refID)
	m.SensorAdr = append(m.SensorAdr, adr)
	m.SensorStage = append(m.SensorStage, t.NeedStage())
	m.NSensorData += t.Dim()
	return adr
}

// testState returns the step snapshot matching testModel, with a sensor
// buffer sized for m. Orientation matrices are derived from the same
// quaternions the model composes so poses stay internally consistent.
func testState(m *model.Model) *state.State {
	ident := mgl64.Ident3()
	matZ90 := spatialmath.QuatToRotationMatrix(qz90)
	geomQuat := quat.Mul(qz90, qx90)

	return &state.State{
		Time: 1.25,

		XPos:  []r3.Vector{{}, {X: 1}, {Y: 2}},
		XQuat: []quat.Number{qIdent, qz90, qIdent},
		XMat:  []mgl64.Mat3{ident, matZ90, ident},

		XIPos: []r3.Vector{{}, {X: 1.1, Y: 0.2}, {Y: 2, Z: 0.3}},
		XIMat: []mgl64.Mat3{ident, matZ90, ident},

		GeomXPos: []r3.Vector{{X: 1, Z: 1}},
		GeomXMat: []mgl64.Mat3{spatialmath.QuatToRotationMatrix(geomQuat)},

		SiteXPos: []r3.Vector{{X: 1, Z: 0.5}, {Y: 2}, {}},
		SiteXMat: []mgl64.Mat3{matZ90, ident, ident},

		CamXPos: []r3.Vector{{Z: 2}},
		CamXMat: []mgl64.Mat3{ident},

		QPos: []float64{0.3, 0, 0, 2, 0},
		QVel: []float64{1.5, 0.25, 0.5, 0.75},

		ActuatorLength:   []float64{0.5, 0.7},
		ActuatorVelocity: []float64{0.1, 0.2},
		ActuatorForce:    []float64{5, 6},

		QfrcActuator: []float64{9, 8, 7, 6},

		SubtreeCOM: []r3.Vector{{X: 0.1, Y: 0.2, Z: 0.3}, {X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},

		SensorData: make([]float64, m.NSensorData),
	}
}
