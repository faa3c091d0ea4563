package snake

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RandomSource produces uniform integers over a closed interval.
type RandomSource interface {
	IntIn(lo, hi int) int
}

// CoordSource is a RandomSource backed by a PCG generator it owns.
// It is seeded exactly once, at construction.
type CoordSource struct {
	rng *rand.Rand
}

// NewCoordSource creates a deterministic source from seed.
func NewCoordSource(seed uint64) *CoordSource {
	return &CoordSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewEntropySource creates a source seeded from the operating system's
// entropy pool.
func NewEntropySource() (*CoordSource, error) {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("snake: cannot read entropy: %w", err)
	}
	return &CoordSource{
		rng: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(buf[:8]),
			binary.LittleEndian.Uint64(buf[8:]),
		)),
	}, nil
}

// NewSource returns a seeded source, or an entropy-seeded one when seed is 0.
func NewSource(seed uint64) (*CoordSource, error) {
	if seed != 0 {
		return NewCoordSource(seed), nil
	}
	return NewEntropySource()
}

// IntIn returns a uniform integer in [lo, hi]. hi must not be below lo.
func (c *CoordSource) IntIn(lo, hi int) int {
	return lo + c.rng.IntN(hi-lo+1)
}

// PointIn returns a uniform cell inside r. r must not be empty.
func PointIn(src RandomSource, r core.Rect) core.Point {
	return core.Point{
		X: src.IntIn(r.X, r.Right()-1),
		Y: src.IntIn(r.Y, r.Bottom()-1),
	}
}
