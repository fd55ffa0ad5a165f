package sensors

import (
	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/state"
)

func (e *Evaluator) accelerationGroup(m *model.Model, d *state.State, g group) ([]int, []float64) {
	switch g.kind {
	case model.SensorActuatorFrc:
		return scalarReadout(m, g, func(i int) float64 {
			return d.ActuatorForce[m.SensorObjID[i]]
		})
	case model.SensorJointActFrc:
		return scalarReadout(m, g, func(i int) float64 {
			return d.QfrcActuator[m.JntDofAdr[m.SensorObjID[i]]]
		})
	default:
		e.skipKind(model.StageAcceleration, g.kind)
		return nil, nil
	}
}
