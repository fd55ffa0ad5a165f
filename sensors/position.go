package sensors

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/ray"
	"github.com/tumultousRamen/mujoco/spatialmath"
	"github.com/tumultousRamen/mujoco/state"
)

func (e *Evaluator) positionGroup(m *model.Model, d *state.State, g group) ([]int, []float64) {
	switch g.kind {
	case model.SensorJointPos:
		return scalarReadout(m, g, func(i int) float64 {
			return d.QPos[m.JntQposAdr[m.SensorObjID[i]]]
		})
	case model.SensorActuatorPos:
		return scalarReadout(m, g, func(i int) float64 {
			return d.ActuatorLength[m.SensorObjID[i]]
		})
	case model.SensorBallQuat:
		return ballQuat(m, d, g)
	case model.SensorSubtreeCOM:
		return vectorReadout(m, g, func(i int) r3.Vector {
			return d.SubtreeCOM[m.SensorObjID[i]]
		})
	case model.SensorClock:
		return scalarReadout(m, g, func(int) float64 {
			return d.Time
		})
	case model.SensorMagnetometer:
		return vectorReadout(m, g, func(i int) r3.Vector {
			return spatialmath.MatTMulVec(d.SiteXMat[m.SensorObjID[i]], m.Opt.Magnetic)
		})
	case model.SensorFramePos:
		return framePos(m, d, g)
	case model.SensorFrameXAxis:
		return frameAxis(m, d, g, 0)
	case model.SensorFrameYAxis:
		return frameAxis(m, d, g, 1)
	case model.SensorFrameZAxis:
		return frameAxis(m, d, g, 2)
	case model.SensorFrameQuat:
		return frameQuatSensor(m, d, g)
	case model.SensorRangefinder:
		return e.rangefinder(m, d, g)
	case model.SensorCamProjection:
		return camProjection(m, d, g)
	default:
		e.skipKind(model.StagePosition, g.kind)
		return nil, nil
	}
}

// scalarReadout evaluates a width-1 kernel over every sensor in the group.
func scalarReadout(m *model.Model, g group, f func(i int) float64) ([]int, []float64) {
	var w writer
	for _, i := range g.idx {
		w.put(m.SensorAdr[i], f(i))
	}
	return w.adrs, w.vals
}

// vectorReadout evaluates a width-3 kernel over every sensor in the group.
func vectorReadout(m *model.Model, g group, f func(i int) r3.Vector) ([]int, []float64) {
	var w writer
	for _, i := range g.idx {
		v := f(i)
		w.put(m.SensorAdr[i], v.X, v.Y, v.Z)
	}
	return w.adrs, w.vals
}

// ballQuat reports a ball joint's orientation: the four generalized position
// components at the joint's address, normalized to a unit quaternion.
func ballQuat(m *model.Model, d *state.State, g group) ([]int, []float64) {
	var w writer
	for _, i := range g.idx {
		a := m.JntQposAdr[m.SensorObjID[i]]
		q := spatialmath.Normalize(quat.Number{
			Real: d.QPos[a], Imag: d.QPos[a+1], Jmag: d.QPos[a+2], Kmag: d.QPos[a+3],
		})
		w.put(m.SensorAdr[i], q.Real, q.Imag, q.Jmag, q.Kmag)
	}
	return w.adrs, w.vals
}

// framePos reports an object's world position, re-expressed in the reference
// object's frame when one is set.
func framePos(m *model.Model, d *state.State, g group) ([]int, []float64) {
	var w writer
	for _, p := range framePairs(m, g) {
		for _, i := range p.idx {
			pos, _ := framePose(d, p.obj, m.SensorObjID[i])
			if refID := m.SensorRefID[i]; refID != model.WorldRefID {
				refPos, refMat := framePose(d, p.ref, refID)
				pos = spatialmath.MatTMulVec(refMat, pos.Sub(refPos))
			}
			w.put(m.SensorAdr[i], pos.X, pos.Y, pos.Z)
		}
	}
	return w.adrs, w.vals
}

// frameAxis reports column axis (0/1/2 for x/y/z) of an object's orientation
// matrix, rotated into the reference frame when one is set.
func frameAxis(m *model.Model, d *state.State, g group, axis int) ([]int, []float64) {
	var w writer
	for _, p := range framePairs(m, g) {
		for _, i := range p.idx {
			_, mat := framePose(d, p.obj, m.SensorObjID[i])
			v := spatialmath.MatCol(mat, axis)
			if refID := m.SensorRefID[i]; refID != model.WorldRefID {
				_, refMat := framePose(d, p.ref, refID)
				v = spatialmath.MatTMulVec(refMat, v)
			}
			w.put(m.SensorAdr[i], v.X, v.Y, v.Z)
		}
	}
	return w.adrs, w.vals
}

// frameQuatSensor reports an object's orientation quaternion, composed with
// the inverse of the reference object's quaternion when one is set.
func frameQuatSensor(m *model.Model, d *state.State, g group) ([]int, []float64) {
	var w writer
	for _, p := range framePairs(m, g) {
		for _, i := range p.idx {
			q := frameQuat(m, d, p.obj, m.SensorObjID[i])
			if refID := m.SensorRefID[i]; refID != model.WorldRefID {
				refQ := frameQuat(m, d, p.ref, refID)
				q = quat.Mul(quat.Conj(refQ), q)
			}
			w.put(m.SensorAdr[i], q.Real, q.Imag, q.Jmag, q.Kmag)
		}
	}
	return w.adrs, w.vals
}

// rangefinder casts a ray from each site along its local z axis and reports
// the distance to the first hit. Rays are grouped by the body each site is
// mounted on so every cast excludes self-collisions with that body. Without a
// caster wired in, every instance reports ray.NoHit so buffer contents stay
// deterministic.
func (e *Evaluator) rangefinder(m *model.Model, d *state.State, g group) ([]int, []float64) {
	byBody := map[int][]int{}
	for _, i := range g.idx {
		b := m.SiteBodyID[m.SensorObjID[i]]
		byBody[b] = append(byBody[b], i)
	}
	bodies := make([]int, 0, len(byBody))
	for b := range byBody {
		bodies = append(bodies, b)
	}
	sort.Ints(bodies)

	var w writer
	for _, b := range bodies {
		for _, i := range byBody[b] {
			if e.caster == nil {
				w.put(m.SensorAdr[i], ray.NoHit)
				continue
			}
			site := m.SensorObjID[i]
			origin := d.SiteXPos[site]
			dir := spatialmath.MatCol(d.SiteXMat[site], 2)
			dist, _ := e.caster.Cast(m, d, origin, dir, nil, b)
			w.put(m.SensorAdr[i], dist)
		}
	}
	return w.adrs, w.vals
}

// camProjection projects each target site into its camera's pixel
// coordinates. The camera is the sensor's reference object.
func camProjection(m *model.Model, d *state.State, g group) ([]int, []float64) {
	var w writer
	for _, i := range g.idx {
		cam := m.SensorRefID[i]
		px := camProject(d.SiteXPos[m.SensorObjID[i]], d.CamXPos[cam], d.CamXMat[cam],
			m.CamResolution[cam], m.CamFOVY[cam], m.CamIntrinsic[cam], m.CamSensorSize[cam])
		w.put(m.SensorAdr[i], px[0], px[1])
	}
	return w.adrs, w.vals
}

// camProject maps a world point into pixel coordinates with a pinhole model:
// the product of image-center offset, focal scaling, camera rotation and
// camera translation applied to the homogeneous target position.
// See: https://en.wikipedia.org/wiki/3D_projection#Mathematical_formula
func camProject(target, camPos r3.Vector, camMat mgl64.Mat3,
	res [2]int, fovy float64, intrinsic [4]float64, sensorSize [2]float64,
) [2]float64 {
	translation := mgl64.Translate3D(-camPos.X, -camPos.Y, -camPos.Z)
	rotation := camMat.Transpose().Mat4()

	var fx, fy float64
	if sensorSize[0] != 0 && sensorSize[1] != 0 {
		// explicit intrinsics, scaled from physical sensor size to pixels;
		// MinVal keeps the division defined for degenerate sensor sizes
		fx = intrinsic[0] / (sensorSize[0] + spatialmath.MinVal) * float64(res[0])
		fy = intrinsic[1] / (sensorSize[1] + spatialmath.MinVal) * float64(res[1])
	} else {
		f := 0.5 / math.Tan(fovy*math.Pi/360.0) * float64(res[1])
		fx, fy = f, f
	}
	// column major; the x focal length is negated so image x grows rightward
	focal := mgl64.Mat3x4{-fx, 0, 0, 0, fy, 0, 0, 0, 1, 0, 0, 0}
	image := mgl64.Ident3()
	image[6] = float64(res[0]) / 2
	image[7] = float64(res[1]) / 2

	proj := image.Mul3x4(focal.Mul4(rotation.Mul4(translation)))
	pix := proj.Mul4x1(mgl64.Vec4{target.X, target.Y, target.Z, 1})

	denom := pix[2]
	if math.Abs(denom) < spatialmath.MinVal {
		// clamp tiny depths, preserving sign, instead of letting the
		// homogeneous divide blow up
		denom = math.Copysign(spatialmath.MinVal, denom)
	}
	return [2]float64{pix[0] / denom, pix[1] / denom}
}
