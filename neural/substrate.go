// Package neural provides the statically-addressed neuron substrate: the
// fixed sensor/action layout, the gene-id topology maps, and the per-tick
// forward propagation over compiled genome connections.
package neural

// Sensor slot indices. The substrate is partitioned into three contiguous
// regions in fixed order: sensors [0, NumSensors), actions
// [NumSensors, HiddenStart), hidden [HiddenStart, neurons).
const (
	SensorPosX = iota
	SensorPosY
	SensorRandom
	SensorEnergy
	SensorAge
	SensorOscillator

	// Self-trait sensors, one per genome trait in trait order.
	SensorStrength
	SensorBravery
	SensorMetabolicEfficiency
	SensorPerception
	SensorSpeed
	SensorTrophicBias
	SensorConstitution

	// Local occupancy densities around the agent.
	SensorAgentDensity
	SensorPlantDensity
	SensorStructureDensity

	// Directional densities: 8 compass sectors per kind, north first,
	// clockwise (N, NE, E, SE, S, SW, W, NW).
	SensorAgentDir     = 16
	SensorPlantDir     = 24
	SensorStructureDir = 32

	NumSensors = 40
)

// Action identifies one action slot, in fixed enumeration order; ties during
// selection resolve to the lower index.
type Action int

const (
	ActMoveNorth Action = iota
	ActMoveNortheast
	ActMoveEast
	ActMoveSoutheast
	ActMoveSouth
	ActMoveSouthwest
	ActMoveWest
	ActMoveNorthwest
	ActFlee
	ActEat
	ActAttack
	ActReproduce
	ActSuicide
)

// NumActions is the size of the action region.
const NumActions = int(ActSuicide) + 1

// Region boundaries within the activation array.
const (
	ActionsStart = NumSensors
	HiddenStart  = NumSensors + NumActions
)

var actionNames = [NumActions]string{
	"move_n", "move_ne", "move_e", "move_se", "move_s", "move_sw", "move_w", "move_nw",
	"flee", "eat", "attack", "reproduce", "suicide",
}

func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// IsMove reports whether the action is one of the eight directional moves.
func (a Action) IsMove() bool {
	return a >= ActMoveNorth && a <= ActMoveNorthwest
}
