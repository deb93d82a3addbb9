package services

import (
	"math/rand/v2"

	"github.com/ad/go-assignments/internal/models"
)

// Sampler selects each category's quota of tasks uniformly at random without
// replacement. The random source is injectable so tests can run with a fixed
// seed; a nil source falls back to the process-wide generator.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample walks the catalog's categories in order and appends each category's
// selection to the result, so task numbers 1..N group by category. A category
// whose quota exceeds its pool fails the whole selection.
func (s *Sampler) Sample(catalog *Catalog) ([]*models.Task, error) {
	var selected []*models.Task
	for _, category := range catalog.Categories {
		pool := catalog.TasksByCategory[category.ID]
		required := category.TasksPerCategory
		if required > len(pool) {
			return nil, insufficientTasksError(category.ID, required, len(pool))
		}
		selected = append(selected, s.pick(pool, required)...)
	}
	return selected, nil
}

// pick runs a Fisher-Yates prefix shuffle: after n swaps the first n slots
// hold n distinct tasks chosen uniformly from the pool. With n == len(pool)
// this degenerates to a full shuffle, which is the wanted behavior.
func (s *Sampler) pick(pool []*models.Task, n int) []*models.Task {
	tmp := make([]*models.Task, len(pool))
	copy(tmp, pool)
	for i := 0; i < n; i++ {
		j := i + s.intN(len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:n]
}

func (s *Sampler) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
