// Package genome implements the gene codec and genome-level genetics:
// creation, mutation, replication, trait extraction, and lineage analysis.
package genome

import "math"

// Gene packs one neural connection into 32 bits:
// bits 0-7 source id, bits 8-15 sink id, bits 16-31 signed weight
// scaled by WeightScale.
type Gene uint32

// Weight encoding constants. The representable weight grid is
// [-32768, 32767] / WeightScale, roughly [-4.0, +4.0).
const (
	WeightScale = 8192.0
	MaxWeight   = 4.0
	MinWeight   = -4.0
)

// EncodeGene packs a connection into a gene. Source and sink ids wrap
// modulo 256. The weight is clamped to [MinWeight, MaxWeight] before scaling,
// then the scaled value is clamped to the int16 range; clamping first keeps
// the 16-bit field from wrapping into a sign-flipped value.
func EncodeGene(source, sink int, weight float64) Gene {
	if weight < MinWeight {
		weight = MinWeight
	} else if weight > MaxWeight {
		weight = MaxWeight
	}

	scaled := int32(math.Round(weight * WeightScale))
	if scaled > math.MaxInt16 {
		scaled = math.MaxInt16
	} else if scaled < math.MinInt16 {
		scaled = math.MinInt16
	}

	return Gene(uint32(source&0xFF) |
		uint32(sink&0xFF)<<8 |
		uint32(uint16(int16(scaled)))<<16)
}

// Decode unpacks a gene into its source id, sink id, and weight.
// Total over the full 32-bit domain; every bit pattern is a valid gene.
func (g Gene) Decode() (source, sink int, weight float64) {
	source = int(g & 0xFF)
	sink = int((g >> 8) & 0xFF)
	weight = float64(int16(g>>16)) / WeightScale
	return
}

// Weight returns only the decoded weight.
func (g Gene) Weight() float64 {
	return float64(int16(g>>16)) / WeightScale
}
