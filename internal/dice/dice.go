// Package dice provides the random source for damage rolls and NPC wandering.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/samdwyer/stickquest/internal/dice Roller

import (
	"fmt"
	"math/rand/v2"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller draws uniform integers.
type Roller interface {
	// Range returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
	Range(lo, hi int) int
}

// ToolkitRoller adapts an rpg-toolkit roller: Range(lo, hi) is one die with
// hi-lo+1 faces, shifted down to start at lo.
type ToolkitRoller struct {
	roller toolkit.Roller
}

var _ Roller = (*ToolkitRoller)(nil)

// New returns a roller. A seed of 0 uses the toolkit's default
// (cryptographic) roller; any other seed gives a reproducible sequence.
func New(seed int64) *ToolkitRoller {
	if seed == 0 {
		return Wrap(toolkit.DefaultRoller)
	}
	return Wrap(NewSeeded(seed))
}

// Wrap adapts an existing toolkit roller.
func Wrap(r toolkit.Roller) *ToolkitRoller {
	return &ToolkitRoller{roller: r}
}

// Range implements Roller.
func (r *ToolkitRoller) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	face, err := r.roller.Roll(hi - lo + 1)
	if err != nil {
		// Only a non-positive size errors, which the guard above rules out.
		return lo
	}
	return lo + face - 1
}

// Seeded is a deterministic toolkit roller backed by a PCG source.
type Seeded struct {
	rng *rand.Rand
}

var _ toolkit.Roller = (*Seeded)(nil)

// NewSeeded returns a roller that replays the same faces for the same seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Roll returns a face in [1, size].
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}
