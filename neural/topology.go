package neural

import "fmt"

// Topology translates raw 8-bit gene ids into valid neuron indices. It is a
// pure function of the substrate layout, built once at startup and passed
// explicitly to every cognition call; it never depends on any genome, so any
// bit pattern a mutation can produce decodes into a structurally valid
// connection with no validation needed in the per-tick loop.
//
// Source ids resolve to readable slots (sensors or hidden, never actions);
// sink ids resolve to writable slots (actions or hidden, never sensors).
type Topology struct {
	Neurons int
	Hidden  int

	source [256]uint16
	sink   [256]uint16
}

// NewTopology builds the maps for a substrate of the given total size.
// The hidden region is whatever remains after sensors and actions and must
// be non-empty.
func NewTopology(neurons int) (*Topology, error) {
	hidden := neurons - NumSensors - NumActions
	if hidden <= 0 {
		return nil, fmt.Errorf("neural: substrate of %d neurons leaves no hidden slots (need > %d)",
			neurons, NumSensors+NumActions)
	}

	t := &Topology{Neurons: neurons, Hidden: hidden}

	readable := NumSensors + hidden
	for i := 0; i < 256; i++ {
		idx := i % readable
		if idx >= NumSensors {
			// Shift past the action region so the index lands in hidden.
			idx += NumActions
		}
		t.source[i] = uint16(idx)
	}

	writable := NumActions + hidden
	for i := 0; i < 256; i++ {
		t.sink[i] = uint16(i%writable + ActionsStart)
	}

	return t, nil
}

// Source resolves a raw source id to a readable neuron index.
func (t *Topology) Source(id int) int {
	return int(t.source[id&0xFF])
}

// Sink resolves a raw sink id to a writable neuron index.
func (t *Topology) Sink(id int) int {
	return int(t.sink[id&0xFF])
}
