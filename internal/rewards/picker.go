package rewards

import (
	"errors"
	"math/rand"
	"time"

	"github.com/akyairhashvil/taskloot/internal/models"
)

// ErrNoRewards is returned when the rewards file holds no candidates.
var ErrNoRewards = errors.New("no rewards available")

// Picker rolls rewards from a candidate list. Construct with NewPicker.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a picker backed by rng. A nil rng gets a time-seeded
// source; tests pass a fixed seed for deterministic rolls.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// Pick rolls once across the candidates, weighting each by the chance
// value of its occurrence tier.
func (p *Picker) Pick(rewards []models.Reward, s *models.Settings) (models.Reward, error) {
	if len(rewards) == 0 {
		return models.Reward{}, ErrNoRewards
	}
	var total float64
	for _, r := range rewards {
		total += tierChance(s, r.Tier)
	}
	roll := p.rng.Float64() * total
	for _, r := range rewards {
		roll -= tierChance(s, r.Tier)
		if roll < 0 {
			return r, nil
		}
	}
	return rewards[len(rewards)-1], nil
}

// PickUniform ignores tier weights; every candidate is equally likely.
func (p *Picker) PickUniform(rewards []models.Reward) (models.Reward, error) {
	if len(rewards) == 0 {
		return models.Reward{}, ErrNoRewards
	}
	return rewards[p.rng.Intn(len(rewards))], nil
}

// tierChance resolves a reward's weight; out-of-range tiers fall back to
// the default tier.
func tierChance(s *models.Settings, tier int) float64 {
	if tier < 0 || tier >= len(s.OccurrenceTypes) {
		tier = 0
	}
	return s.OccurrenceTypes[tier].Value
}
