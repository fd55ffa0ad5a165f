package sensors

import (
	"testing"

	"go.viam.com/test"

	"github.com/tumultousRamen/mujoco/model"
)

func TestJointVel(t *testing.T) {
	m := testModel()
	adr := addSensor(m, model.SensorJointVel, model.ObjectWorld, 0, model.ObjectWorld, model.WorldRefID)
	d := testState(m)

	out := Velocity(m, d)
	test.That(t, out.SensorData[adr], test.ShouldEqual, d.QVel[0])
}

func TestActuatorVel(t *testing.T) {
	m := testModel()
	adr0 := addSensor(m, model.SensorActuatorVel, model.ObjectWorld, 0, model.ObjectWorld, model.WorldRefID)
	adr1 := addSensor(m, model.SensorActuatorVel, model.ObjectWorld, 1, model.ObjectWorld, model.WorldRefID)
	d := testState(m)

	out := Velocity(m, d)
	test.That(t, out.SensorData[adr0], test.ShouldEqual, 0.1)
	test.That(t, out.SensorData[adr1], test.ShouldEqual, 0.2)
}

func TestBallAngVel(t *testing.T) {
	m := testModel()
	adr := addSensor(m, model.SensorBallAngVel, model.ObjectWorld, 1, model.ObjectWorld, model.WorldRefID)
	d := testState(m)

	// three dofs starting at the ball joint's dof address
	out := Velocity(m, d)
	test.That(t, out.SensorData[adr:adr+3], test.ShouldResemble, []float64{0.25, 0.5, 0.75})
}

func TestVelocityStageLeavesOtherStagesAlone(t *testing.T) {
	m := testModel()
	posAdr := addSensor(m, model.SensorJointPos, model.ObjectWorld, 0, model.ObjectWorld, model.WorldRefID)
	velAdr := addSensor(m, model.SensorJointVel, model.ObjectWorld, 0, model.ObjectWorld, model.WorldRefID)
	d := testState(m)

	out := Velocity(m, d)
	test.That(t, out.SensorData[velAdr], test.ShouldEqual, d.QVel[0])
	test.That(t, out.SensorData[posAdr], test.ShouldEqual, 0.0)
}
