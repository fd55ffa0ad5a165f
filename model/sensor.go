package model

// SensorType enumerates the supported virtual sensor kinds. The numeric tag
// order is the order kind groups are evaluated in within a stage, so it must
// stay stable across releases.
type SensorType int

// Position-stage kinds, then velocity-stage kinds, then acceleration-stage kinds.
const (
	SensorJointPos SensorType = iota
	SensorActuatorPos
	SensorBallQuat
	SensorFramePos
	SensorFrameXAxis
	SensorFrameYAxis
	SensorFrameZAxis
	SensorFrameQuat
	SensorSubtreeCOM
	SensorClock
	SensorMagnetometer
	SensorRangefinder
	SensorCamProjection
	SensorJointVel
	SensorActuatorVel
	SensorBallAngVel
	SensorActuatorFrc
	SensorJointActFrc
)

// Dim returns the number of consecutive output components the sensor kind
// writes, starting at its base address.
func (t SensorType) Dim() int {
	switch t {
	case SensorBallQuat, SensorFrameQuat:
		return 4
	case SensorFramePos, SensorFrameXAxis, SensorFrameYAxis, SensorFrameZAxis,
		SensorSubtreeCOM, SensorMagnetometer, SensorBallAngVel:
		return 3
	case SensorCamProjection:
		return 2
	default:
		return 1
	}
}

// NeedStage returns the computation stage whose quantities the sensor kind
// depends on and therefore the earliest stage it may be evaluated in.
func (t SensorType) NeedStage() Stage {
	switch t {
	case SensorJointVel, SensorActuatorVel, SensorBallAngVel:
		return StageVelocity
	case SensorActuatorFrc, SensorJointActFrc:
		return StageAcceleration
	default:
		return StagePosition
	}
}

func (t SensorType) String() string {
	switch t {
	case SensorJointPos:
		return "jointpos"
	case SensorActuatorPos:
		return "actuatorpos"
	case SensorBallQuat:
		return "ballquat"
	case SensorFramePos:
		return "framepos"
	case SensorFrameXAxis:
		return "framexaxis"
	case SensorFrameYAxis:
		return "frameyaxis"
	case SensorFrameZAxis:
		return "framezaxis"
	case SensorFrameQuat:
		return "framequat"
	case SensorSubtreeCOM:
		return "subtreecom"
	case SensorClock:
		return "clock"
	case SensorMagnetometer:
		return "magnetometer"
	case SensorRangefinder:
		return "rangefinder"
	case SensorCamProjection:
		return "camprojection"
	case SensorJointVel:
		return "jointvel"
	case SensorActuatorVel:
		return "actuatorvel"
	case SensorBallAngVel:
		return "ballangvel"
	case SensorActuatorFrc:
		return "actuatorfrc"
	case SensorJointActFrc:
		return "jointactfrc"
	default:
		return "unknown"
	}
}

// Stage is one of the three per-step computation stages. A sensor may only be
// evaluated once the quantities of its stage have been computed.
type Stage int

// The stages in dependency order.
const (
	StagePosition Stage = iota
	StageVelocity
	StageAcceleration
)

func (s Stage) String() string {
	switch s {
	case StagePosition:
		return "position"
	case StageVelocity:
		return "velocity"
	case StageAcceleration:
		return "acceleration"
	default:
		return "unknown"
	}
}

// ObjectType identifies which class of scene object a sensor is attached to or
// expressed relative to.
type ObjectType int

// ObjectWorld doubles as "no reference": a sensor whose reference id is
// WorldRefID reports its raw world-frame value.
const (
	ObjectWorld ObjectType = iota
	ObjectBody              // body inertial frame
	ObjectXBody             // body joint ("extended") frame
	ObjectGeom
	ObjectSite
	ObjectCamera
)

func (o ObjectType) String() string {
	switch o {
	case ObjectWorld:
		return "world"
	case ObjectBody:
		return "body"
	case ObjectXBody:
		return "xbody"
	case ObjectGeom:
		return "geom"
	case ObjectSite:
		return "site"
	case ObjectCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// WorldRefID is the sentinel reference id meaning "world frame, no transform".
const WorldRefID = -1
