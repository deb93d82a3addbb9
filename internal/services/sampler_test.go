package services

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ad/go-assignments/internal/models"
	"pgregory.net/rapid"
)

func makeCatalog(counts []int, poolSizes []int) *Catalog {
	catalog := &Catalog{TasksByCategory: make(map[int64][]*models.Task)}
	var nextTaskID int64 = 1
	for i := range counts {
		categoryID := int64(i + 1)
		catalog.Categories = append(catalog.Categories, &models.TaskCategory{
			ID:               categoryID,
			TasksPerCategory: counts[i],
		})
		for j := 0; j < poolSizes[i]; j++ {
			catalog.TasksByCategory[categoryID] = append(catalog.TasksByCategory[categoryID], &models.Task{
				ID:         nextTaskID,
				TaskName:   "task",
				CategoryID: categoryID,
			})
			nextTaskID++
		}
	}
	return catalog
}

func TestSampleProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numCategories := rapid.IntRange(1, 6).Draw(rt, "numCategories")
		counts := make([]int, numCategories)
		poolSizes := make([]int, numCategories)
		for i := 0; i < numCategories; i++ {
			counts[i] = rapid.IntRange(0, 5).Draw(rt, "count")
			poolSizes[i] = counts[i] + rapid.IntRange(0, 5).Draw(rt, "extra")
		}
		seed := rapid.Uint64().Draw(rt, "seed")

		catalog := makeCatalog(counts, poolSizes)
		sampler := NewSampler(rand.New(rand.NewPCG(seed, 0)))

		selected, err := sampler.Sample(catalog)
		if err != nil {
			rt.Fatalf("Sample failed: %v", err)
		}

		total := 0
		for _, c := range counts {
			total += c
		}
		if len(selected) != total {
			rt.Fatalf("Expected %d tasks, got %d", total, len(selected))
		}

		// Tasks must group by category in catalog order, each group the
		// right size, drawn from the right pool, with no repeats.
		seen := make(map[int64]bool)
		pos := 0
		for i, category := range catalog.Categories {
			pool := make(map[int64]bool)
			for _, task := range catalog.TasksByCategory[category.ID] {
				pool[task.ID] = true
			}
			for j := 0; j < counts[i]; j++ {
				task := selected[pos]
				pos++
				if task.CategoryID != category.ID {
					rt.Fatalf("Task at position %d belongs to category %d, expected %d", pos-1, task.CategoryID, category.ID)
				}
				if !pool[task.ID] {
					rt.Fatalf("Task %d not in category %d pool", task.ID, category.ID)
				}
				if seen[task.ID] {
					rt.Fatalf("Task %d selected twice", task.ID)
				}
				seen[task.ID] = true
			}
		}
	})
}

func TestSample_RequiredEqualsPoolSelectsAll(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 8).Draw(rt, "size")
		seed := rapid.Uint64().Draw(rt, "seed")

		catalog := makeCatalog([]int{size}, []int{size})
		sampler := NewSampler(rand.New(rand.NewPCG(seed, 0)))

		selected, err := sampler.Sample(catalog)
		if err != nil {
			rt.Fatalf("Sample failed: %v", err)
		}
		if len(selected) != size {
			rt.Fatalf("Expected all %d tasks, got %d", size, len(selected))
		}
		seen := make(map[int64]bool)
		for _, task := range selected {
			seen[task.ID] = true
		}
		if len(seen) != size {
			rt.Fatalf("Expected %d distinct tasks, got %d", size, len(seen))
		}
	})
}

func TestSample_InsufficientTasksInCategory(t *testing.T) {
	catalog := makeCatalog([]int{2, 3}, []int{5, 2})
	sampler := NewSampler(rand.New(rand.NewPCG(1, 2)))

	_, err := sampler.Sample(catalog)
	if !errors.Is(err, ErrInsufficientTasks) {
		t.Fatalf("Expected ErrInsufficientTasks, got %v", err)
	}

	var se *StartError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *StartError, got %T", err)
	}
	if se.CategoryID != 2 {
		t.Errorf("Expected category 2 to be named, got %d", se.CategoryID)
	}
	if se.Required != 3 || se.Available != 2 {
		t.Errorf("Expected required=3 available=2, got required=%d available=%d", se.Required, se.Available)
	}
}

func TestSample_EmptyPoolWithPositiveQuota(t *testing.T) {
	// Category 2 has a quota but no tasks at all for this assignment.
	catalog := makeCatalog([]int{1, 2}, []int{3, 0})
	delete(catalog.TasksByCategory, 2)

	sampler := NewSampler(rand.New(rand.NewPCG(7, 7)))
	_, err := sampler.Sample(catalog)
	if !errors.Is(err, ErrInsufficientTasks) {
		t.Fatalf("Expected ErrInsufficientTasks for missing pool, got %v", err)
	}
}

func TestSample_ZeroQuotaCategoryContributesNothing(t *testing.T) {
	catalog := makeCatalog([]int{0, 2}, []int{4, 3})
	sampler := NewSampler(rand.New(rand.NewPCG(3, 9)))

	selected, err := sampler.Sample(catalog)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(selected))
	}
	for _, task := range selected {
		if task.CategoryID != 2 {
			t.Errorf("Expected only category 2 tasks, got category %d", task.CategoryID)
		}
	}
}

func TestSample_DoesNotMutateCatalogPools(t *testing.T) {
	catalog := makeCatalog([]int{2}, []int{5})
	before := make([]int64, 0, 5)
	for _, task := range catalog.TasksByCategory[1] {
		before = append(before, task.ID)
	}

	sampler := NewSampler(rand.New(rand.NewPCG(11, 13)))
	if _, err := sampler.Sample(catalog); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	for i, task := range catalog.TasksByCategory[1] {
		if task.ID != before[i] {
			t.Fatalf("Sampler reordered the catalog pool at index %d", i)
		}
	}
}
