package model

import (
	"testing"

	"go.viam.com/test"
)

func checkModel(types []SensorType, adrs []int, size int) *Model {
	n := len(types)
	m := &Model{
		SensorType:    types,
		SensorObjType: make([]ObjectType, n),
		SensorObjID:   make([]int, n),
		SensorRefType: make([]ObjectType, n),
		SensorRefID:   make([]int, n),
		SensorAdr:     adrs,
		SensorStage:   make([]Stage, n),
		NSensorData:   size,
	}
	for i, typ := range types {
		m.SensorRefID[i] = WorldRefID
		m.SensorStage[i] = typ.NeedStage()
	}
	return m
}

func TestCheckSensorsOK(t *testing.T) {
	m := checkModel(
		[]SensorType{SensorJointPos, SensorFramePos, SensorFrameQuat, SensorJointVel},
		[]int{0, 1, 4, 8}, 9)
	test.That(t, m.CheckSensors(), test.ShouldBeNil)
	test.That(t, m.NSensor(), test.ShouldEqual, 4)
}

func TestCheckSensorsOverlap(t *testing.T) {
	// the framepos range [1,4) collides with the quaternion at 3
	m := checkModel(
		[]SensorType{SensorJointPos, SensorFramePos, SensorFrameQuat},
		[]int{0, 1, 3}, 8)
	err := m.CheckSensors()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "already written")
}

func TestCheckSensorsOutOfRange(t *testing.T) {
	m := checkModel([]SensorType{SensorFrameQuat}, []int{2}, 4)
	err := m.CheckSensors()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "outside buffer")

	m = checkModel([]SensorType{SensorJointPos}, []int{-1}, 4)
	test.That(t, m.CheckSensors(), test.ShouldNotBeNil)
}

func TestCheckSensorsStageMismatch(t *testing.T) {
	m := checkModel([]SensorType{SensorJointVel}, []int{0}, 1)
	m.SensorStage[0] = StagePosition
	err := m.CheckSensors()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "kind needs velocity")
}

func TestCheckSensorsLengthMismatch(t *testing.T) {
	m := checkModel([]SensorType{SensorJointPos}, []int{0}, 1)
	m.SensorObjID = nil
	err := m.CheckSensors()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "SensorObjID")
}
