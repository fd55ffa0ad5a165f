package sensors

import (
	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/state"
)

func (e *Evaluator) velocityGroup(m *model.Model, d *state.State, g group) ([]int, []float64) {
	switch g.kind {
	case model.SensorJointVel:
		return scalarReadout(m, g, func(i int) float64 {
			return d.QVel[m.JntDofAdr[m.SensorObjID[i]]]
		})
	case model.SensorActuatorVel:
		return scalarReadout(m, g, func(i int) float64 {
			return d.ActuatorVelocity[m.SensorObjID[i]]
		})
	case model.SensorBallAngVel:
		return ballAngVel(m, d, g)
	default:
		e.skipKind(model.StageVelocity, g.kind)
		return nil, nil
	}
}

// ballAngVel reports a ball joint's angular velocity: the three generalized
// velocity components at the joint's dof address.
func ballAngVel(m *model.Model, d *state.State, g group) ([]int, []float64) {
	var w writer
	for _, i := range g.idx {
		a := m.JntDofAdr[m.SensorObjID[i]]
		w.put(m.SensorAdr[i], d.QVel[a], d.QVel[a+1], d.QVel[a+2])
	}
	return w.adrs, w.vals
}
