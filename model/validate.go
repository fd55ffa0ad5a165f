package model

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// CheckSensors verifies the sensor descriptor arrays the way a scene compiler
// should have: parallel arrays of equal length, every address range inside the
// output buffer, no two ranges overlapping, and each sensor assigned to the
// stage its kind needs. The evaluation layer itself assumes these hold; this
// pass exists for callers assembling models by hand or loading them from
// untrusted tooling. All findings are aggregated rather than failing on the
// first.
func (m *Model) CheckSensors() error {
	var err error

	n := len(m.SensorType)
	for name, l := range map[string]int{
		"SensorObjType": len(m.SensorObjType),
		"SensorObjID":   len(m.SensorObjID),
		"SensorRefType": len(m.SensorRefType),
		"SensorRefID":   len(m.SensorRefID),
		"SensorAdr":     len(m.SensorAdr),
		"SensorStage":   len(m.SensorStage),
	} {
		if l != n {
			err = multierr.Append(err, errors.Errorf("%s has length %d, want %d", name, l, n))
		}
	}
	if err != nil {
		return err
	}

	// owner[k] is the sensor occupying buffer slot k, or -1
	owner := make([]int, m.NSensorData)
	for i := range owner {
		owner[i] = -1
	}
	for i := 0; i < n; i++ {
		t := m.SensorType[i]
		adr, dim := m.SensorAdr[i], t.Dim()
		if adr < 0 || adr+dim > m.NSensorData {
			err = multierr.Append(err, errors.Errorf(
				"sensor %d (%s): address range [%d,%d) outside buffer of size %d",
				i, t, adr, adr+dim, m.NSensorData))
			continue
		}
		for k := adr; k < adr+dim; k++ {
			if owner[k] != -1 {
				err = multierr.Append(err, errors.Errorf(
					"sensor %d (%s): address %d already written by sensor %d",
					i, t, k, owner[k]))
				continue
			}
			owner[k] = i
		}
		if m.SensorStage[i] != t.NeedStage() {
			err = multierr.Append(err, errors.Errorf(
				"sensor %d (%s): assigned stage %s, kind needs %s",
				i, t, m.SensorStage[i], t.NeedStage()))
		}
	}
	return err
}
