// Package sensors evaluates virtual sensor readings from a simulation step's
// already-computed kinematic and dynamic state. Sensors are split across the
// three per-step stages; the caller runs Position, Velocity and Acceleration
// (in any order, each exactly once) to fully populate a step's sensor buffer.
// Every entry point is a pure transform: it reads the model and state and
// returns a state whose sensor buffer has been updated at the addresses owned
// by that stage's sensors, leaving the input untouched.
package sensors

import (
	"sort"
	"sync"

	"github.com/edaniels/golog"
	goutils "go.viam.com/utils"

	"github.com/tumultousRamen/mujoco/model"
	"github.com/tumultousRamen/mujoco/ray"
	"github.com/tumultousRamen/mujoco/state"
)

// Evaluator computes sensor readings for a model. The zero-value configuration
// (via NewEvaluator with no options) evaluates sequentially, skips
// unrecognized sensor kinds silently, and reports no-hit for rangefinders
// since it has no ray caster.
type Evaluator struct {
	logger   golog.Logger
	caster   ray.Caster
	strict   bool
	parallel bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for strict-kind warnings.
func WithLogger(logger golog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithRayCaster wires in the collision engine's ray caster used by
// rangefinder sensors. Without one, every rangefinder reports ray.NoHit.
func WithRayCaster(c ray.Caster) Option {
	return func(e *Evaluator) {
		e.caster = c
	}
}

// WithStrictKinds makes the evaluator log a warning whenever it skips a
// sensor kind it cannot evaluate in a stage, instead of skipping silently.
func WithStrictKinds(strict bool) Option {
	return func(e *Evaluator) {
		e.strict = strict
	}
}

// WithParallelGroups evaluates a stage's kind groups on separate goroutines.
// Groups write disjoint address ranges, so the result is identical to
// sequential evaluation; the final scatter happens after all groups join.
func WithParallelGroups(parallel bool) Option {
	return func(e *Evaluator) {
		e.parallel = parallel
	}
}

// NewEvaluator returns an Evaluator with the given options applied.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{logger: golog.Global()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Position evaluates position-stage sensors with a default evaluator.
func Position(m *model.Model, d *state.State) *state.State {
	return defaultEvaluator.Position(m, d)
}

// Velocity evaluates velocity-stage sensors with a default evaluator.
func Velocity(m *model.Model, d *state.State) *state.State {
	return defaultEvaluator.Velocity(m, d)
}

// Acceleration evaluates acceleration-stage sensors with a default evaluator.
func Acceleration(m *model.Model, d *state.State) *state.State {
	return defaultEvaluator.Acceleration(m, d)
}

// Position evaluates all sensors needing the position stage.
func (e *Evaluator) Position(m *model.Model, d *state.State) *state.State {
	return e.run(m, d, model.StagePosition, e.positionGroup)
}

// Velocity evaluates all sensors needing the velocity stage.
func (e *Evaluator) Velocity(m *model.Model, d *state.State) *state.State {
	return e.run(m, d, model.StageVelocity, e.velocityGroup)
}

// Acceleration evaluates all sensors needing the acceleration stage.
func (e *Evaluator) Acceleration(m *model.Model, d *state.State) *state.State {
	return e.run(m, d, model.StageAcceleration, e.accelerationGroup)
}

// kernelFunc evaluates one kind group, returning per-component buffer
// addresses and the matching values.
type kernelFunc func(m *model.Model, d *state.State, g group) ([]int, []float64)

func (e *Evaluator) run(m *model.Model, d *state.State, stage model.Stage, kernel kernelFunc) *state.State {
	if m.Opt.SensorDisabled() {
		return d
	}
	groups := stageGroups(m, stage)
	if len(groups) == 0 {
		return d
	}

	writes := make([]writer, len(groups))
	if e.parallel {
		var wg sync.WaitGroup
		for i, g := range groups {
			i, g := i, g
			wg.Add(1)
			goutils.PanicCapturingGo(func() {
				defer wg.Done()
				adrs, vals := kernel(m, d, g)
				writes[i] = writer{adrs, vals}
			})
		}
		wg.Wait()
	} else {
		for i, g := range groups {
			adrs, vals := kernel(m, d, g)
			writes[i] = writer{adrs, vals}
		}
	}

	total := 0
	for _, w := range writes {
		total += len(w.adrs)
	}
	if total == 0 {
		return d
	}
	out := d.CloneSensorData()
	for _, w := range writes {
		scatter(out.SensorData, w.adrs, w.vals)
	}
	return out
}

// group is the set of sensor indices of one kind needing a given stage.
type group struct {
	kind model.SensorType
	idx  []int
}

// stageGroups partitions a stage's sensors by kind, ordered by ascending
// numeric tag. Results do not depend on group order since address ranges are
// disjoint, but a stable order keeps buffer writes reproducible across runs
// and platforms.
func stageGroups(m *model.Model, stage model.Stage) []group {
	byKind := map[model.SensorType][]int{}
	for i, st := range m.SensorStage {
		if st != stage {
			continue
		}
		byKind[m.SensorType[i]] = append(byKind[m.SensorType[i]], i)
	}
	kinds := make([]int, 0, len(byKind))
	for t := range byKind {
		kinds = append(kinds, int(t))
	}
	sort.Ints(kinds)
	groups := make([]group, 0, len(kinds))
	for _, t := range kinds {
		kind := model.SensorType(t)
		groups = append(groups, group{kind: kind, idx: byKind[kind]})
	}
	return groups
}

// skipKind records that a stage left a sensor kind unevaluated. Skipping is
// silent by default pending a model-level validation pass; strict mode makes
// it observable.
func (e *Evaluator) skipKind(stage model.Stage, t model.SensorType) {
	if e.strict {
		e.logger.Warnw("sensor kind not evaluated in stage",
			"kind", t.String(), "tag", int(t), "stage", stage.String())
	}
}
