package sensors

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/spatialmath"
	"github.com/tumultousRamen/mujoco/state"
)

// framePose returns an object's world position and orientation matrix.
// ObjectWorld is the world frame itself: zero position, identity orientation.
// An object type outside the enum cannot come from a correctly compiled model,
// so it panics rather than limping along with wrong geometry.
func framePose(d *state.State, ot model.ObjectType, id int) (r3.Vector, mgl64.Mat3) {
	switch ot {
	case model.ObjectWorld:
		return r3.Vector{}, mgl64.Ident3()
	case model.ObjectBody:
		return d.XIPos[id], d.XIMat[id]
	case model.ObjectXBody:
		return d.XPos[id], d.XMat[id]
	case model.ObjectGeom:
		return d.GeomXPos[id], d.GeomXMat[id]
	case model.ObjectSite:
		return d.SiteXPos[id], d.SiteXMat[id]
	case model.ObjectCamera:
		return d.CamXPos[id], d.CamXMat[id]
	default:
		panic(errors.Errorf("frame lookup on unrecognized object type %d", int(ot)))
	}
}

// frameQuat returns an object's world orientation quaternion. Joint frames
// store theirs directly; every other object class composes its owning body's
// quaternion with the object's static local offset.
func frameQuat(m *model.Model, d *state.State, ot model.ObjectType, id int) quat.Number {
	switch ot {
	case model.ObjectWorld:
		return spatialmath.QuatIdentity()
	case model.ObjectXBody:
		return d.XQuat[id]
	case model.ObjectBody:
		return quat.Mul(d.XQuat[id], m.BodyIQuat[id])
	case model.ObjectGeom:
		return quat.Mul(d.XQuat[m.GeomBodyID[id]], m.GeomQuat[id])
	case model.ObjectSite:
		return quat.Mul(d.XQuat[m.SiteBodyID[id]], m.SiteQuat[id])
	case model.ObjectCamera:
		return quat.Mul(d.XQuat[m.CamBodyID[id]], m.CamQuat[id])
	default:
		panic(errors.Errorf("quaternion lookup on unrecognized object type %d", int(ot)))
	}
}

// framePair is the subset of a kind group sharing one (object type, reference
// type) combination. Frame sensors read different world arrays per pair, so
// the frame kernels evaluate pair by pair, ascending, to keep write order
// stable.
type framePair struct {
	obj, ref model.ObjectType
	idx      []int
}

func framePairs(m *model.Model, g group) []framePair {
	byPair := map[[2]model.ObjectType][]int{}
	for _, i := range g.idx {
		k := [2]model.ObjectType{m.SensorObjType[i], m.SensorRefType[i]}
		byPair[k] = append(byPair[k], i)
	}
	keys := make([][2]model.ObjectType, 0, len(byPair))
	for k := range byPair {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	pairs := make([]framePair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, framePair{obj: k[0], ref: k[1], idx: byPair[k]})
	}
	return pairs
}
