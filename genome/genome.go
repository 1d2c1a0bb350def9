package genome

import (
	"math"
	"math/rand"
)

// Genome is an ordered, fixed-length sequence of genes. The final trait-gene
// region (see Trait) is decoded into phenotype scalars instead of network
// connections.
type Genome []Gene

// TraitKind names the phenotype scalars decoded from the trait-gene region.
type TraitKind int

const (
	TraitStrength TraitKind = iota
	TraitBravery
	TraitMetabolicEfficiency
	TraitPerception
	TraitSpeed
	TraitTrophicBias
	TraitConstitution

	NumTraits = 7
)

var traitNames = [NumTraits]string{
	"strength", "bravery", "metabolic_efficiency", "perception",
	"speed", "trophic_bias", "constitution",
}

func (t TraitKind) String() string {
	if t < 0 || int(t) >= NumTraits {
		return "unknown"
	}
	return traitNames[t]
}

// Traits holds the decoded phenotype, each scalar in roughly [-1, 1].
type Traits struct {
	Strength            float64
	Bravery             float64
	MetabolicEfficiency float64
	Perception          float64
	Speed               float64
	TrophicBias         float64
	Constitution        float64
}

// New creates a random genome: every gene gets random source/sink bytes and a
// uniform weight in [-weightRange, +weightRange].
func New(rng *rand.Rand, length int, weightRange float64) Genome {
	g := make(Genome, length)
	for i := range g {
		w := (rng.Float64()*2 - 1) * weightRange
		g[i] = EncodeGene(rng.Intn(256), rng.Intn(256), w)
	}
	return g
}

// Mutate flips, for each gene independently with probability rate, exactly one
// randomly chosen bit of its 32-bit value. Single-bit flips preserve most of
// the encoded structure while still allowing incremental drift.
func (g Genome) Mutate(rng *rand.Rand, rate float64) {
	for i := range g {
		if rng.Float64() < rate {
			g[i] ^= 1 << rng.Intn(32)
		}
	}
}

// Replicate copies the parent genome and mutates the copy. Agent assembly
// (trait decoding, diet classification, placement) is the scheduler's job.
func Replicate(parent Genome, rng *rand.Rand, rate float64) Genome {
	child := make(Genome, len(parent))
	copy(child, parent)
	child.Mutate(rng, rate)
	return child
}

// Trait decodes one phenotype scalar from the reserved trait-gene region at
// the tail of the genome: the region is split evenly across NumTraits, the
// slice for the requested trait is averaged, normalized by norm, and squashed
// with tanh into (-1, 1). Empty or undersized genomes yield 0.
func (g Genome) Trait(t TraitKind, traitGenes int, norm float64) float64 {
	if len(g) == 0 || traitGenes <= 0 || traitGenes > len(g) || norm <= 0 {
		return 0
	}
	per := traitGenes / NumTraits
	if per == 0 {
		return 0
	}

	start := len(g) - traitGenes + int(t)*per
	var sum float64
	for _, gene := range g[start : start+per] {
		sum += gene.Weight()
	}
	return math.Tanh(sum / float64(per) / norm)
}

// DecodeTraits extracts all phenotype scalars at once.
func (g Genome) DecodeTraits(traitGenes int, norm float64) Traits {
	return Traits{
		Strength:            g.Trait(TraitStrength, traitGenes, norm),
		Bravery:             g.Trait(TraitBravery, traitGenes, norm),
		MetabolicEfficiency: g.Trait(TraitMetabolicEfficiency, traitGenes, norm),
		Perception:          g.Trait(TraitPerception, traitGenes, norm),
		Speed:               g.Trait(TraitSpeed, traitGenes, norm),
		TrophicBias:         g.Trait(TraitTrophicBias, traitGenes, norm),
		Constitution:        g.Trait(TraitConstitution, traitGenes, norm),
	}
}

// Similarity returns the fraction of gene slots whose raw 32-bit values match
// exactly between two genomes. Genomes of differing length (or empty ones)
// are defined as fully dissimilar; this is a best-effort analysis path.
func Similarity(a, b Genome) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}

// FNV-1a constants.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// Hash folds the genome's raw bytes (little-endian per gene) through FNV-1a.
// An empty genome hashes to the FNV-1a offset basis.
func (g Genome) Hash() uint64 {
	h := fnvOffsetBasis
	for _, gene := range g {
		v := uint32(gene)
		h = (h ^ uint64(v&0xFF)) * fnvPrime
		h = (h ^ uint64(v>>8&0xFF)) * fnvPrime
		h = (h ^ uint64(v>>16&0xFF)) * fnvPrime
		h = (h ^ uint64(v>>24&0xFF)) * fnvPrime
	}
	return h
}

// Diet classifies what an agent can digest, derived from the TrophicBias trait.
type Diet uint8

const (
	DietCarnivore Diet = iota
	DietOmnivore
	DietHerbivore
)

func (d Diet) String() string {
	switch d {
	case DietCarnivore:
		return "carnivore"
	case DietOmnivore:
		return "omnivore"
	case DietHerbivore:
		return "herbivore"
	}
	return "unknown"
}

// ClassifyDiet maps a trophic bias to a diet: below the carnivore threshold
// the agent hunts, above the herbivore threshold it grazes, between the two
// it does both.
func ClassifyDiet(trophicBias, carnivoreThreshold, herbivoreThreshold float64) Diet {
	switch {
	case trophicBias < carnivoreThreshold:
		return DietCarnivore
	case trophicBias > herbivoreThreshold:
		return DietHerbivore
	default:
		return DietOmnivore
	}
}
