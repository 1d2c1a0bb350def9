package neural

import "github.com/Kromtec/Vivarium-sub001/genome"

// Conn is one compiled connection: substrate indices already resolved through
// the topology maps, weight already decoded. Compiled once per genome and
// cached on the agent.
type Conn struct {
	Source uint16
	Sink   uint16
	Weight float64
}

// Compile resolves a genome's connection genes against the topology. The
// trailing traitGenes slots are phenotype carriers, not connections, and are
// skipped.
func Compile(g genome.Genome, topo *Topology, traitGenes int) []Conn {
	n := len(g) - traitGenes
	if n <= 0 {
		return nil
	}

	conns := make([]Conn, n)
	for i, gene := range g[:n] {
		src, snk, w := gene.Decode()
		conns[i] = Conn{
			Source: uint16(topo.Source(src)),
			Sink:   uint16(topo.Sink(snk)),
			Weight: w,
		}
	}
	return conns
}

// Propagate runs one forward pass. Sensor slots of acts must already hold the
// current tick's readings; hidden slots hold last tick's state. Every
// connection accumulates source*weight into its sink, then action slots take
// the squashed sum and hidden slots blend it with their previous value
// (decay*old + (1-decay)*new), giving the network one-tick memory.
//
// sums is caller-owned scratch of at least len(acts); it is overwritten.
func Propagate(acts []float64, conns []Conn, decay float64, sums []float64) {
	sums = sums[:len(acts)]
	for i := range sums {
		sums[i] = 0
	}

	for _, c := range conns {
		sums[c.Sink] += acts[c.Source] * c.Weight
	}

	for i := ActionsStart; i < HiddenStart; i++ {
		acts[i] = Squash(sums[i])
	}
	for i := HiddenStart; i < len(acts); i++ {
		acts[i] = decay*acts[i] + (1-decay)*Squash(sums[i])
	}
}

// Squash is a fast rational tanh approximation, bounded in [-1, 1] for all
// finite inputs. The rational form hits exactly 1 at |x| = 3 and would
// overshoot past it, so saturation starts there.
func Squash(x float64) float64 {
	if x > 3 {
		return 1
	}
	if x < -3 {
		return -1
	}
	x2 := x * x
	return x * (27 + x2) / (27 + 9*x2)
}
