// Package ray defines the boundary to the ray-casting engine consumed by
// rangefinder sensors. The engine itself lives with the collision code; this
// layer only needs to fire rays and read back distances.
package ray

import (
	"github.com/golang/geo/r3"

	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/state"
)

// NoHit is the distance reported when a ray intersects nothing.
const NoHit = -1.0

// NoGeom is the geom id reported alongside NoHit.
const NoGeom = -1

// A Caster intersects rays with the scene's collision geometry.
type Caster interface {
	// Cast fires a ray from origin along dir (a unit vector in world
	// coordinates) and returns the distance to the nearest geom surface
	// together with that geom's id, or NoHit/NoGeom if nothing is hit.
	// geomGroups restricts candidate geoms to the given groups when
	// non-nil. Geoms belonging to excludeBody are never reported, so a
	// sensor does not see the body it is mounted on.
	Cast(m *model.Model, d *state.State, origin, dir r3.Vector, geomGroups []int, excludeBody int) (float64, int)
}
